package user

import "context"

type Repository interface {
	Create(ctx context.Context, username, email, passwordHash, firstName, lastName, role string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	FindByRole(ctx context.Context, role string) ([]User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, u *User) (*User, error)
	Delete(ctx context.Context, id int64) error
}
