package reservation

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

var reservationRows = []string{"id", "terrain_id", "user_id", "start_time", "end_time", "price", "status", "notes", "created_at", "cancelled_at"}

func TestCreateConfirmed(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM terrains WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations WHERE")).
		WithArgs(int64(1), start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WithArgs(int64(1), int64(7), start, end, 40.0, "").
		WillReturnRows(sqlmock.NewRows(reservationRows).
			AddRow(10, 1, 7, start, end, 40.0, "CONFIRMED", "", time.Now(), nil))
	mock.ExpectCommit()

	res, err := repo.CreateConfirmed(context.Background(), &Reservation{
		TerrainID: 1,
		UserID:    7,
		StartTime: start,
		EndTime:   end,
		Price:     40,
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), res.ID)
	require.Equal(t, StatusConfirmed, res.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConfirmed_SlotTaken(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM terrains WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations WHERE")).
		WithArgs(int64(1), start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.CreateConfirmed(context.Background(), &Reservation{
		TerrainID: 1,
		UserID:    7,
		StartTime: start,
		EndTime:   end,
	})
	require.ErrorIs(t, err, ErrSlotUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountOverlapping(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations WHERE")).
		WithArgs(int64(2), start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountOverlapping(context.Background(), 2, start, end)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestChangeStatus(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE reservations")).
		WithArgs(StatusCancelled, int64(5)).
		WillReturnRows(sqlmock.NewRows(reservationRows).
			AddRow(5, 1, 7, now, now.Add(time.Hour), 40.0, "CANCELLED", "", now, now))

	res, err := repo.ChangeStatus(context.Background(), 5, StatusCancelled)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, res.Status)
	require.NotNil(t, res.CancelledAt)
}

func TestDeleteReservation(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 5))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = $1")).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 6)
	require.ErrorIs(t, err, ErrReservationNotFound)
}
