package user

import (
	"context"
	"errors"

	"padelhub/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrUserNotFound = errors.New("user not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const userColumns = `id, username, email, password_hash, first_name, last_name, phone_number, profile_picture_url, role, created_at`

func (r *repository) Create(ctx context.Context, username, email, passwordHash, firstName, lastName, role string) (*User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	var u User
	err := r.db.GetContext(ctx, &u, query, username, email, passwordHash, firstName, lastName, role)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var u User
	err := r.db.GetContext(ctx, &u, query, username)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	var users []User
	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *repository) FindByRole(ctx context.Context, role string) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at DESC`

	var users []User
	err := r.db.SelectContext(ctx, &users, query, role)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *repository) UpdateProfile(ctx context.Context, u *User) (*User, error) {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, phone_number = $3, profile_picture_url = $4
		WHERE id = $5
		RETURNING ` + userColumns

	var updated User
	err := r.db.GetContext(ctx, &updated, query, u.FirstName, u.LastName, u.PhoneNumber, u.ProfilePictureURL, u.ID)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
