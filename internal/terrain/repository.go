package terrain

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrTerrainNotFound = errors.New("terrain not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const terrainColumns = `id, name, description, image_url, price_per_hour, indoor, type, active, facility_id, created_at`

func (r *repository) Create(ctx context.Context, t *Terrain) (*Terrain, error) {
	query := `
		INSERT INTO terrains (name, description, image_url, price_per_hour, indoor, type, active, facility_id)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)
		RETURNING ` + terrainColumns

	var created Terrain
	err := r.db.GetContext(ctx, &created, query,
		t.Name, t.Description, t.ImageURL, t.PricePerHour, t.Indoor, t.Type, t.FacilityID,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Terrain, error) {
	query := `SELECT ` + terrainColumns + ` FROM terrains WHERE id = $1`

	var t Terrain
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Terrain, error) {
	query := `SELECT ` + terrainColumns + ` FROM terrains ORDER BY id`

	var terrains []Terrain
	err := r.db.SelectContext(ctx, &terrains, query)
	if err != nil {
		return nil, err
	}

	return terrains, nil
}

func (r *repository) FindByActive(ctx context.Context, active bool) ([]Terrain, error) {
	query := `SELECT ` + terrainColumns + ` FROM terrains WHERE active = $1 ORDER BY id`

	var terrains []Terrain
	err := r.db.SelectContext(ctx, &terrains, query, active)
	if err != nil {
		return nil, err
	}

	return terrains, nil
}

func (r *repository) FindByFacility(ctx context.Context, facilityID int64) ([]Terrain, error) {
	query := `SELECT ` + terrainColumns + ` FROM terrains WHERE facility_id = $1 ORDER BY id`

	var terrains []Terrain
	err := r.db.SelectContext(ctx, &terrains, query, facilityID)
	if err != nil {
		return nil, err
	}

	return terrains, nil
}

func (r *repository) FindByFacilityAndActive(ctx context.Context, facilityID int64, active bool) ([]Terrain, error) {
	query := `SELECT ` + terrainColumns + ` FROM terrains WHERE facility_id = $1 AND active = $2 ORDER BY id`

	var terrains []Terrain
	err := r.db.SelectContext(ctx, &terrains, query, facilityID, active)
	if err != nil {
		return nil, err
	}

	return terrains, nil
}

func (r *repository) Update(ctx context.Context, t *Terrain) (*Terrain, error) {
	query := `
		UPDATE terrains
		SET name = $1, description = $2, image_url = $3, price_per_hour = $4, indoor = $5, type = $6
		WHERE id = $7
		RETURNING ` + terrainColumns

	var updated Terrain
	err := r.db.GetContext(ctx, &updated, query,
		t.Name, t.Description, t.ImageURL, t.PricePerHour, t.Indoor, t.Type, t.ID,
	)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) SetActive(ctx context.Context, id int64, active bool) (*Terrain, error) {
	query := `
		UPDATE terrains
		SET active = $1
		WHERE id = $2
		RETURNING ` + terrainColumns

	var updated Terrain
	err := r.db.GetContext(ctx, &updated, query, active, id)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete drops the terrain's reservations first so the foreign key never
// blocks the hard delete.
func (r *repository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reservations WHERE terrain_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM terrains WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTerrainNotFound
	}

	return tx.Commit()
}
