package terrain

import "context"

type Repository interface {
	Create(ctx context.Context, t *Terrain) (*Terrain, error)
	FindByID(ctx context.Context, id int64) (*Terrain, error)
	FindAll(ctx context.Context) ([]Terrain, error)
	FindByActive(ctx context.Context, active bool) ([]Terrain, error)
	FindByFacility(ctx context.Context, facilityID int64) ([]Terrain, error)
	FindByFacilityAndActive(ctx context.Context, facilityID int64, active bool) ([]Terrain, error)
	Update(ctx context.Context, t *Terrain) (*Terrain, error)
	SetActive(ctx context.Context, id int64, active bool) (*Terrain, error)
	Delete(ctx context.Context, id int64) error
}
