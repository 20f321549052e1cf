package facility

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrFacilityNotFound = errors.New("facility not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const facilityColumns = `id, name, address, city, description, image_url, contact_phone, contact_email, opening_hours, owner_id, created_at`

func (r *repository) Create(ctx context.Context, f *Facility) (*Facility, error) {
	query := `
		INSERT INTO facilities (name, address, city, description, image_url, contact_phone, contact_email, opening_hours, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + facilityColumns

	var created Facility
	err := r.db.GetContext(ctx, &created, query,
		f.Name, f.Address, f.City, f.Description, f.ImageURL,
		f.ContactPhone, f.ContactEmail, f.OpeningHours, f.OwnerID,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities WHERE id = $1`

	var f Facility
	err := r.db.GetContext(ctx, &f, query, id)
	if err != nil {
		return nil, err
	}

	return &f, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities ORDER BY created_at DESC`

	var facilities []Facility
	err := r.db.SelectContext(ctx, &facilities, query)
	if err != nil {
		return nil, err
	}

	return facilities, nil
}

func (r *repository) FindByOwner(ctx context.Context, ownerID int64) ([]Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities WHERE owner_id = $1 ORDER BY created_at DESC`

	var facilities []Facility
	err := r.db.SelectContext(ctx, &facilities, query, ownerID)
	if err != nil {
		return nil, err
	}

	return facilities, nil
}

func (r *repository) FindByCity(ctx context.Context, city string) ([]Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities WHERE city = $1 ORDER BY created_at DESC`

	var facilities []Facility
	err := r.db.SelectContext(ctx, &facilities, query, city)
	if err != nil {
		return nil, err
	}

	return facilities, nil
}

func (r *repository) Update(ctx context.Context, f *Facility) (*Facility, error) {
	query := `
		UPDATE facilities
		SET name = $1, address = $2, city = $3, description = $4, image_url = $5,
		    contact_phone = $6, contact_email = $7, opening_hours = $8
		WHERE id = $9
		RETURNING ` + facilityColumns

	var updated Facility
	err := r.db.GetContext(ctx, &updated, query,
		f.Name, f.Address, f.City, f.Description, f.ImageURL,
		f.ContactPhone, f.ContactEmail, f.OpeningHours, f.ID,
	)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the facility together with everything hanging off it, in
// one transaction: reservations of its terrains, the terrains, transactions
// of its equipment, the equipment, then the facility row itself.
func (r *repository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM reservations WHERE terrain_id IN (SELECT id FROM terrains WHERE facility_id = $1)`, id); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM terrains WHERE facility_id = $1`, id); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM equipment_transactions WHERE equipment_id IN (SELECT id FROM equipment WHERE facility_id = $1)`, id); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM equipment WHERE facility_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM facilities WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrFacilityNotFound
	}

	return tx.Commit()
}
