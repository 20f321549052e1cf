package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotUnavailable     = errors.New("the selected time slot is not available")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const reservationColumns = `id, terrain_id, user_id, start_time, end_time, price, status, notes, created_at, cancelled_at`

// overlapPredicate matches reservations on a terrain whose half-open
// [start_time, end_time) interval intersects [$2, $3). Two intervals
// overlap iff each one starts before the other ends; reservations that
// merely touch at a boundary do not conflict. Cancelled reservations
// never block a slot.
const overlapPredicate = `
	terrain_id = $1
	AND status != 'CANCELLED'
	AND start_time < $3
	AND end_time > $2`

func (r *repository) CreateConfirmed(ctx context.Context, res *Reservation) (*Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Serialize bookings per terrain so two requests for the same slot
	// cannot both pass the overlap check before either inserts.
	var terrainID int64
	err = tx.GetContext(ctx, &terrainID, `SELECT id FROM terrains WHERE id = $1 FOR UPDATE`, res.TerrainID)
	if err != nil {
		return nil, err
	}

	var overlapping int
	err = tx.GetContext(ctx, &overlapping,
		`SELECT COUNT(*) FROM reservations WHERE`+overlapPredicate,
		res.TerrainID, res.StartTime, res.EndTime,
	)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, ErrSlotUnavailable
	}

	query := `
		INSERT INTO reservations (terrain_id, user_id, start_time, end_time, price, status, notes)
		VALUES ($1, $2, $3, $4, $5, 'CONFIRMED', $6)
		RETURNING ` + reservationColumns

	var created Reservation
	err = tx.GetContext(ctx, &created, query,
		res.TerrainID, res.UserID, res.StartTime, res.EndTime, res.Price, res.Notes,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	var res Reservation
	err := r.db.GetContext(ctx, &res, query, id)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY start_time DESC`

	var reservations []Reservation
	err := r.db.SelectContext(ctx, &reservations, query)
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *repository) FindByUser(ctx context.Context, userID int64) ([]Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE user_id = $1 ORDER BY start_time DESC`

	var reservations []Reservation
	err := r.db.SelectContext(ctx, &reservations, query, userID)
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *repository) FindByTerrain(ctx context.Context, terrainID int64) ([]Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE terrain_id = $1 ORDER BY start_time DESC`

	var reservations []Reservation
	err := r.db.SelectContext(ctx, &reservations, query, terrainID)
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *repository) FindByTerrainAndStatus(ctx context.Context, terrainID int64, status Status) ([]Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE terrain_id = $1 AND status = $2 ORDER BY start_time DESC`

	var reservations []Reservation
	err := r.db.SelectContext(ctx, &reservations, query, terrainID, status)
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *repository) FindByUserAndStatus(ctx context.Context, userID int64, status Status) ([]Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE user_id = $1 AND status = $2 ORDER BY start_time DESC`

	var reservations []Reservation
	err := r.db.SelectContext(ctx, &reservations, query, userID, status)
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *repository) FindByFacility(ctx context.Context, facilityID int64) ([]Reservation, error) {
	query := `
		SELECT r.id, r.terrain_id, r.user_id, r.start_time, r.end_time, r.price, r.status, r.notes, r.created_at, r.cancelled_at
		FROM reservations r
		JOIN terrains t ON r.terrain_id = t.id
		WHERE t.facility_id = $1
		ORDER BY r.start_time DESC
	`

	var reservations []Reservation
	err := r.db.SelectContext(ctx, &reservations, query, facilityID)
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *repository) FindByFacilityOwner(ctx context.Context, ownerID int64) ([]Reservation, error) {
	query := `
		SELECT r.id, r.terrain_id, r.user_id, r.start_time, r.end_time, r.price, r.status, r.notes, r.created_at, r.cancelled_at
		FROM reservations r
		JOIN terrains t ON r.terrain_id = t.id
		JOIN facilities f ON t.facility_id = f.id
		WHERE f.owner_id = $1
		ORDER BY r.start_time DESC
	`

	var reservations []Reservation
	err := r.db.SelectContext(ctx, &reservations, query, ownerID)
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *repository) CountOverlapping(ctx context.Context, terrainID int64, start, end time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM reservations WHERE`+overlapPredicate,
		terrainID, start, end,
	)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) Update(ctx context.Context, res *Reservation) (*Reservation, error) {
	query := `
		UPDATE reservations
		SET start_time = $1, end_time = $2, price = $3, notes = $4
		WHERE id = $5
		RETURNING ` + reservationColumns

	var updated Reservation
	err := r.db.GetContext(ctx, &updated, query,
		res.StartTime, res.EndTime, res.Price, res.Notes, res.ID,
	)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) ChangeStatus(ctx context.Context, id int64, status Status) (*Reservation, error) {
	query := `
		UPDATE reservations
		SET status = $1,
		    cancelled_at = CASE WHEN $1 = 'CANCELLED' THEN NOW() ELSE cancelled_at END
		WHERE id = $2
		RETURNING ` + reservationColumns

	var updated Reservation
	err := r.db.GetContext(ctx, &updated, query, status, id)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}
