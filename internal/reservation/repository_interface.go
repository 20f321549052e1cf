package reservation

import (
	"context"
	"time"
)

type Repository interface {
	// CreateConfirmed re-checks the overlap predicate and inserts inside a
	// single transaction, locking the terrain row to serialize concurrent
	// bookings for the same terrain.
	CreateConfirmed(ctx context.Context, res *Reservation) (*Reservation, error)
	FindByID(ctx context.Context, id int64) (*Reservation, error)
	FindAll(ctx context.Context) ([]Reservation, error)
	FindByUser(ctx context.Context, userID int64) ([]Reservation, error)
	FindByTerrain(ctx context.Context, terrainID int64) ([]Reservation, error)
	FindByTerrainAndStatus(ctx context.Context, terrainID int64, status Status) ([]Reservation, error)
	FindByUserAndStatus(ctx context.Context, userID int64, status Status) ([]Reservation, error)
	FindByFacility(ctx context.Context, facilityID int64) ([]Reservation, error)
	FindByFacilityOwner(ctx context.Context, ownerID int64) ([]Reservation, error)
	CountOverlapping(ctx context.Context, terrainID int64, start, end time.Time) (int, error)
	Update(ctx context.Context, res *Reservation) (*Reservation, error)
	ChangeStatus(ctx context.Context, id int64, status Status) (*Reservation, error)
	Delete(ctx context.Context, id int64) error
}
