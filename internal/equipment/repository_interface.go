package equipment

import "context"

type Repository interface {
	Create(ctx context.Context, e *Equipment) (*Equipment, error)
	FindByID(ctx context.Context, id int64) (*Equipment, error)
	FindAll(ctx context.Context) ([]Equipment, error)
	FindByFacility(ctx context.Context, facilityID int64) ([]Equipment, error)
	FindPurchasableByFacility(ctx context.Context, facilityID int64) ([]Equipment, error)
	FindRentableByFacility(ctx context.Context, facilityID int64) ([]Equipment, error)
	FindByFacilityAndType(ctx context.Context, facilityID int64, equipmentType EquipmentType) ([]Equipment, error)
	Update(ctx context.Context, e *Equipment) (*Equipment, error)
	// AdjustStock applies a signed delta to the stock level inside a
	// transaction, locking the equipment row. A delta that would take the
	// stock negative fails with ErrNegativeStock.
	AdjustStock(ctx context.Context, id int64, delta int) (*Equipment, error)
	Delete(ctx context.Context, id int64) error
}
