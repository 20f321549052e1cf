package transaction

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

var transactionRows = []string{"id", "equipment_id", "user_id", "type", "quantity", "unit_price", "total_amount", "transaction_date", "return_date", "status", "notes"}

var lockedEquipmentRows = []string{"purchase_price", "rental_price", "stock_quantity", "available_for_purchase", "available_for_rental"}

func expectEquipmentLock(mock sqlmock.Sqlmock, price float64, rental interface{}, stock int, forPurchase, forRental bool) {
	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(lockedEquipmentRows).AddRow(price, rental, stock, forPurchase, forRental))
}

func TestPurchase(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectBegin()
	expectEquipmentLock(mock, 25.0, nil, 10, true, false)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE equipment SET stock_quantity = stock_quantity - $1 WHERE id = $2")).
		WithArgs(2, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO equipment_transactions")).
		WithArgs(int64(1), int64(7), 2, 25.0, 50.0).
		WillReturnRows(sqlmock.NewRows(transactionRows).
			AddRow(3, 1, 7, "PURCHASE", 2, 25.0, 50.0, now, nil, "COMPLETED", ""))
	mock.ExpectCommit()

	tx, err := repo.Purchase(context.Background(), 7, 1, 2)
	require.NoError(t, err)
	require.Equal(t, TypePurchase, tx.Type)
	require.Equal(t, StatusCompleted, tx.Status)
	require.Equal(t, 50.0, tx.TotalAmount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchase_NotPurchasable(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	expectEquipmentLock(mock, 25.0, nil, 10, false, true)
	mock.ExpectRollback()

	_, err := repo.Purchase(context.Background(), 7, 1, 1)
	require.ErrorIs(t, err, ErrNotPurchasable)
}

func TestPurchase_InsufficientStock(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	expectEquipmentLock(mock, 25.0, nil, 1, true, false)
	mock.ExpectRollback()

	_, err := repo.Purchase(context.Background(), 7, 1, 2)
	require.ErrorIs(t, err, ErrInsufficientStock)
}

func TestRent(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	returnDate := now.AddDate(0, 0, 3)

	mock.ExpectBegin()
	expectEquipmentLock(mock, 25.0, 5.0, 4, true, true)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE equipment SET stock_quantity = stock_quantity - $1 WHERE id = $2")).
		WithArgs(1, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO equipment_transactions")).
		WithArgs(int64(1), int64(7), 1, 5.0, 5.0, returnDate).
		WillReturnRows(sqlmock.NewRows(transactionRows).
			AddRow(4, 1, 7, "RENTAL", 1, 5.0, 5.0, now, returnDate, "PENDING", ""))
	mock.ExpectCommit()

	tx, err := repo.Rent(context.Background(), 7, 1, 1, &returnDate)
	require.NoError(t, err)
	require.Equal(t, TypeRental, tx.Type)
	require.Equal(t, StatusPending, tx.Status)
}

func TestRent_NoRentalPrice(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	expectEquipmentLock(mock, 25.0, nil, 4, true, true)
	mock.ExpectRollback()

	_, err := repo.Rent(context.Background(), 7, 1, 1, nil)
	require.ErrorIs(t, err, ErrNotRentable)
}

func TestReturn(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	agreedReturn := now.Add(48 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment_transactions WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(transactionRows).
			AddRow(4, 1, 7, "RENTAL", 1, 5.0, 5.0, now, agreedReturn, "PENDING", ""))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE equipment SET stock_quantity = stock_quantity + $1 WHERE id = $2")).
		WithArgs(1, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// The UPDATE flips status only; the agreed return date stays as booked.
	mock.ExpectQuery(`SET status = 'RETURNED'\s+WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(transactionRows).
			AddRow(4, 1, 7, "RENTAL", 1, 5.0, 5.0, now, agreedReturn, "RETURNED", ""))
	mock.ExpectCommit()

	tx, err := repo.Return(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, StatusReturned, tx.Status)
	require.NotNil(t, tx.ReturnDate)
	require.WithinDuration(t, agreedReturn, *tx.ReturnDate, time.Second)
}

func TestReturn_NotARental(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment_transactions WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(transactionRows).
			AddRow(3, 1, 7, "PURCHASE", 1, 25.0, 25.0, now, nil, "COMPLETED", ""))
	mock.ExpectRollback()

	_, err := repo.Return(context.Background(), 3)
	require.ErrorIs(t, err, ErrNotRental)
}

func TestReturn_AlreadyReturned(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment_transactions WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(transactionRows).
			AddRow(4, 1, 7, "RENTAL", 1, 5.0, 5.0, now, now, "RETURNED", ""))
	mock.ExpectRollback()

	_, err := repo.Return(context.Background(), 4)
	require.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestCancel_OnlyPending(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment_transactions WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(transactionRows).
			AddRow(3, 1, 7, "PURCHASE", 1, 25.0, 25.0, now, nil, "COMPLETED", ""))
	mock.ExpectRollback()

	_, err := repo.Cancel(context.Background(), 3)
	require.ErrorIs(t, err, ErrNotCancellable)
}

func TestCancel_RestoresStock(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment_transactions WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(transactionRows).
			AddRow(4, 1, 7, "RENTAL", 2, 5.0, 10.0, now, nil, "PENDING", ""))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE equipment SET stock_quantity = stock_quantity + $1 WHERE id = $2")).
		WithArgs(2, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SET status = 'CANCELLED'")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(transactionRows).
			AddRow(4, 1, 7, "RENTAL", 2, 5.0, 10.0, now, nil, "CANCELLED", ""))
	mock.ExpectCommit()

	tx, err := repo.Cancel(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, tx.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
