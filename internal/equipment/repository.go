package equipment

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrNegativeStock     = errors.New("Cannot reduce stock below zero")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const equipmentColumns = `id, name, description, image_url, type, purchase_price, rental_price, stock_quantity, available_for_purchase, available_for_rental, facility_id, created_at`

func (r *repository) Create(ctx context.Context, e *Equipment) (*Equipment, error) {
	query := `
		INSERT INTO equipment (name, description, image_url, type, purchase_price, rental_price, stock_quantity, available_for_purchase, available_for_rental, facility_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + equipmentColumns

	var created Equipment
	err := r.db.GetContext(ctx, &created, query,
		e.Name, e.Description, e.ImageURL, e.Type, e.PurchasePrice, e.RentalPrice,
		e.StockQuantity, e.AvailableForPurchase, e.AvailableForRental, e.FacilityID,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`

	var e Equipment
	err := r.db.GetContext(ctx, &e, query, id)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY name`

	var items []Equipment
	err := r.db.SelectContext(ctx, &items, query)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) FindByFacility(ctx context.Context, facilityID int64) ([]Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE facility_id = $1 ORDER BY name`

	var items []Equipment
	err := r.db.SelectContext(ctx, &items, query, facilityID)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) FindPurchasableByFacility(ctx context.Context, facilityID int64) ([]Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE facility_id = $1 AND available_for_purchase = TRUE ORDER BY name`

	var items []Equipment
	err := r.db.SelectContext(ctx, &items, query, facilityID)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) FindRentableByFacility(ctx context.Context, facilityID int64) ([]Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE facility_id = $1 AND available_for_rental = TRUE ORDER BY name`

	var items []Equipment
	err := r.db.SelectContext(ctx, &items, query, facilityID)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) FindByFacilityAndType(ctx context.Context, facilityID int64, equipmentType EquipmentType) ([]Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE facility_id = $1 AND type = $2 ORDER BY name`

	var items []Equipment
	err := r.db.SelectContext(ctx, &items, query, facilityID, equipmentType)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) Update(ctx context.Context, e *Equipment) (*Equipment, error) {
	query := `
		UPDATE equipment
		SET name = $1, description = $2, image_url = $3, type = $4, purchase_price = $5,
		    rental_price = $6, available_for_purchase = $7, available_for_rental = $8
		WHERE id = $9
		RETURNING ` + equipmentColumns

	var updated Equipment
	err := r.db.GetContext(ctx, &updated, query,
		e.Name, e.Description, e.ImageURL, e.Type, e.PurchasePrice,
		e.RentalPrice, e.AvailableForPurchase, e.AvailableForRental, e.ID,
	)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) AdjustStock(ctx context.Context, id int64, delta int) (*Equipment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var stock int
	err = tx.GetContext(ctx, &stock, `SELECT stock_quantity FROM equipment WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, err
	}

	if stock+delta < 0 {
		return nil, ErrNegativeStock
	}

	query := `
		UPDATE equipment
		SET stock_quantity = stock_quantity + $1
		WHERE id = $2
		RETURNING ` + equipmentColumns

	var updated Equipment
	err = tx.GetContext(ctx, &updated, query, delta, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM equipment_transactions WHERE equipment_id = $1`, id)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEquipmentNotFound
	}

	return tx.Commit()
}
