package facility

import "context"

type Repository interface {
	Create(ctx context.Context, f *Facility) (*Facility, error)
	FindByID(ctx context.Context, id int64) (*Facility, error)
	FindAll(ctx context.Context) ([]Facility, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]Facility, error)
	FindByCity(ctx context.Context, city string) ([]Facility, error)
	Update(ctx context.Context, f *Facility) (*Facility, error)
	Delete(ctx context.Context, id int64) error
}
