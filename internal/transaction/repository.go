package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotPurchasable      = errors.New("Equipment is not available for purchase")
	ErrNotRentable         = errors.New("Equipment is not available for rental")
	ErrInsufficientStock   = errors.New("Not enough stock available")
	ErrNotRental           = errors.New("This is not a rental transaction")
	ErrAlreadyProcessed    = errors.New("This transaction has already been processed")
	ErrNotCancellable      = errors.New("This transaction cannot be cancelled")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const transactionColumns = `id, equipment_id, user_id, type, quantity, unit_price, total_amount, transaction_date, return_date, status, notes`

// lockedEquipment is the slice of the equipment row a stock-moving
// transaction needs while holding the row lock.
type lockedEquipment struct {
	PurchasePrice        float64  `db:"purchase_price"`
	RentalPrice          *float64 `db:"rental_price"`
	StockQuantity        int      `db:"stock_quantity"`
	AvailableForPurchase bool     `db:"available_for_purchase"`
	AvailableForRental   bool     `db:"available_for_rental"`
}

func lockEquipment(ctx context.Context, tx *sqlx.Tx, equipmentID int64) (*lockedEquipment, error) {
	var e lockedEquipment
	err := tx.GetContext(ctx, &e, `
		SELECT purchase_price, rental_price, stock_quantity, available_for_purchase, available_for_rental
		FROM equipment WHERE id = $1 FOR UPDATE`, equipmentID)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Purchase(ctx context.Context, userID, equipmentID int64, quantity int) (*Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	e, err := lockEquipment(ctx, tx, equipmentID)
	if err != nil {
		return nil, err
	}
	if !e.AvailableForPurchase {
		return nil, ErrNotPurchasable
	}
	if e.StockQuantity < quantity {
		return nil, ErrInsufficientStock
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE equipment SET stock_quantity = stock_quantity - $1 WHERE id = $2`,
		quantity, equipmentID,
	)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO equipment_transactions (equipment_id, user_id, type, quantity, unit_price, total_amount, status)
		VALUES ($1, $2, 'PURCHASE', $3, $4, $5, 'COMPLETED')
		RETURNING ` + transactionColumns

	var created Transaction
	err = tx.GetContext(ctx, &created, query,
		equipmentID, userID, quantity, e.PurchasePrice, e.PurchasePrice*float64(quantity),
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) Rent(ctx context.Context, userID, equipmentID int64, quantity int, returnDate *time.Time) (*Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	e, err := lockEquipment(ctx, tx, equipmentID)
	if err != nil {
		return nil, err
	}
	if !e.AvailableForRental || e.RentalPrice == nil {
		return nil, ErrNotRentable
	}
	if e.StockQuantity < quantity {
		return nil, ErrInsufficientStock
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE equipment SET stock_quantity = stock_quantity - $1 WHERE id = $2`,
		quantity, equipmentID,
	)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO equipment_transactions (equipment_id, user_id, type, quantity, unit_price, total_amount, return_date, status)
		VALUES ($1, $2, 'RENTAL', $3, $4, $5, $6, 'PENDING')
		RETURNING ` + transactionColumns

	var created Transaction
	err = tx.GetContext(ctx, &created, query,
		equipmentID, userID, quantity, *e.RentalPrice, *e.RentalPrice*float64(quantity), returnDate,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) Return(ctx context.Context, id int64) (*Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var current Transaction
	err = tx.GetContext(ctx, &current,
		`SELECT `+transactionColumns+` FROM equipment_transactions WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, err
	}

	if current.Type != TypeRental {
		return nil, ErrNotRental
	}
	if current.Status == StatusReturned || current.Status == StatusCancelled {
		return nil, ErrAlreadyProcessed
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE equipment SET stock_quantity = stock_quantity + $1 WHERE id = $2`,
		current.Quantity, current.EquipmentID,
	)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE equipment_transactions
		SET status = 'RETURNED'
		WHERE id = $1
		RETURNING ` + transactionColumns

	var updated Transaction
	err = tx.GetContext(ctx, &updated, query, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Cancel(ctx context.Context, id int64) (*Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var current Transaction
	err = tx.GetContext(ctx, &current,
		`SELECT `+transactionColumns+` FROM equipment_transactions WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, err
	}

	if current.Status != StatusPending {
		return nil, ErrNotCancellable
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE equipment SET stock_quantity = stock_quantity + $1 WHERE id = $2`,
		current.Quantity, current.EquipmentID,
	)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE equipment_transactions
		SET status = 'CANCELLED'
		WHERE id = $1
		RETURNING ` + transactionColumns

	var updated Transaction
	err = tx.GetContext(ctx, &updated, query, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM equipment_transactions WHERE id = $1`

	var t Transaction
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM equipment_transactions ORDER BY transaction_date DESC`

	var transactions []Transaction
	err := r.db.SelectContext(ctx, &transactions, query)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *repository) FindByUser(ctx context.Context, userID int64) ([]Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM equipment_transactions WHERE user_id = $1 ORDER BY transaction_date DESC`

	var transactions []Transaction
	err := r.db.SelectContext(ctx, &transactions, query, userID)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *repository) FindByEquipment(ctx context.Context, equipmentID int64) ([]Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM equipment_transactions WHERE equipment_id = $1 ORDER BY transaction_date DESC`

	var transactions []Transaction
	err := r.db.SelectContext(ctx, &transactions, query, equipmentID)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *repository) FindByFacility(ctx context.Context, facilityID int64) ([]Transaction, error) {
	query := `
		SELECT tr.id, tr.equipment_id, tr.user_id, tr.type, tr.quantity, tr.unit_price, tr.total_amount, tr.transaction_date, tr.return_date, tr.status, tr.notes
		FROM equipment_transactions tr
		JOIN equipment e ON tr.equipment_id = e.id
		WHERE e.facility_id = $1
		ORDER BY tr.transaction_date DESC
	`

	var transactions []Transaction
	err := r.db.SelectContext(ctx, &transactions, query, facilityID)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *repository) FindActiveRentalsByUser(ctx context.Context, userID int64) ([]Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM equipment_transactions
		WHERE user_id = $1 AND type = 'RENTAL' AND status != 'RETURNED'
		ORDER BY transaction_date DESC
	`

	var transactions []Transaction
	err := r.db.SelectContext(ctx, &transactions, query, userID)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *repository) FindByDateRange(ctx context.Context, from, to time.Time) ([]Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM equipment_transactions
		WHERE transaction_date >= $1 AND transaction_date <= $2
		ORDER BY transaction_date DESC
	`

	var transactions []Transaction
	err := r.db.SelectContext(ctx, &transactions, query, from, to)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
