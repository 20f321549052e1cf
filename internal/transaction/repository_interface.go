package transaction

import (
	"context"
	"time"
)

type Repository interface {
	// Purchase decrements the equipment stock and records a COMPLETED
	// purchase in one transaction, locking the equipment row.
	Purchase(ctx context.Context, userID, equipmentID int64, quantity int) (*Transaction, error)
	// Rent decrements the equipment stock and records a PENDING rental in
	// one transaction, locking the equipment row.
	Rent(ctx context.Context, userID, equipmentID int64, quantity int, returnDate *time.Time) (*Transaction, error)
	// Return marks a rental RETURNED and restores the stock it held.
	Return(ctx context.Context, id int64) (*Transaction, error)
	// Cancel marks a PENDING transaction CANCELLED and restores its stock.
	Cancel(ctx context.Context, id int64) (*Transaction, error)
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	FindAll(ctx context.Context) ([]Transaction, error)
	FindByUser(ctx context.Context, userID int64) ([]Transaction, error)
	FindByEquipment(ctx context.Context, equipmentID int64) ([]Transaction, error)
	FindByFacility(ctx context.Context, facilityID int64) ([]Transaction, error)
	FindActiveRentalsByUser(ctx context.Context, userID int64) ([]Transaction, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]Transaction, error)
}
