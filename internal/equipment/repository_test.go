package equipment

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

var equipmentRows = []string{"id", "name", "description", "image_url", "type", "purchase_price", "rental_price", "stock_quantity", "available_for_purchase", "available_for_rental", "facility_id", "created_at"}

func TestAdjustStock(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock_quantity FROM equipment WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"stock_quantity"}).AddRow(5))
	mock.ExpectQuery(regexp.QuoteMeta("SET stock_quantity = stock_quantity + $1")).
		WithArgs(-3, int64(1)).
		WillReturnRows(sqlmock.NewRows(equipmentRows).
			AddRow(1, "Racket", "", "", "RACKET", 25.0, nil, 2, true, false, 1, now))
	mock.ExpectCommit()

	e, err := repo.AdjustStock(context.Background(), 1, -3)
	require.NoError(t, err)
	require.Equal(t, 2, e.StockQuantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustStock_RejectsNegativeResult(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock_quantity FROM equipment WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"stock_quantity"}).AddRow(2))
	mock.ExpectRollback()

	_, err := repo.AdjustStock(context.Background(), 1, -3)
	require.ErrorIs(t, err, ErrNegativeStock)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPurchasableByFacility(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	rows := sqlmock.NewRows(equipmentRows).
		AddRow(1, "Racket", "", "", "RACKET", 25.0, nil, 5, true, false, 1, now).
		AddRow(2, "Balls", "", "", "BALL", 6.0, nil, 40, true, false, 1, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment WHERE facility_id = $1 AND available_for_purchase = TRUE")).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	items, err := repo.FindPurchasableByFacility(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
}
