package token

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

var userTokenRows = []string{"id", "user_id", "token_pack_id", "tokens_remaining", "purchase_amount", "purchase_date", "expiry_date"}

func validBatches(now time.Time, remaining ...int) *sqlmock.Rows {
	rows := sqlmock.NewRows(userTokenRows)
	for i, r := range remaining {
		rows.AddRow(int64(i+1), 7, 1, r, 50.0, now, now.AddDate(1, 0, 0))
	}
	return rows
}

func TestConsume_DrainsBatchesInOrder(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	// Batches hold 5 and 3 tokens; spending 6 empties the first and
	// leaves 2 in the second.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_tokens WHERE")).
		WithArgs(int64(7)).
		WillReturnRows(validBatches(now, 5, 3))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE user_tokens SET tokens_remaining = 0 WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE user_tokens SET tokens_remaining = $1 WHERE id = $2")).
		WithArgs(2, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	batch, err := repo.Consume(context.Background(), 7, 6)
	require.NoError(t, err)
	require.Equal(t, int64(2), batch.ID)
	require.Equal(t, 2, batch.TokensRemaining)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConsume_SingleBatchCoversSpend(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_tokens WHERE")).
		WithArgs(int64(7)).
		WillReturnRows(validBatches(now, 10))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE user_tokens SET tokens_remaining = $1 WHERE id = $2")).
		WithArgs(4, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	batch, err := repo.Consume(context.Background(), 7, 6)
	require.NoError(t, err)
	require.Equal(t, 4, batch.TokensRemaining)
}

func TestConsume_InsufficientTokensRollsBack(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	// Spending 9 against 5+3 zeroes both batches and then fails; the
	// rollback restores them.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_tokens WHERE")).
		WithArgs(int64(7)).
		WillReturnRows(validBatches(now, 5, 3))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE user_tokens SET tokens_remaining = 0 WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE user_tokens SET tokens_remaining = 0 WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	_, err := repo.Consume(context.Background(), 7, 9)
	require.ErrorIs(t, err, ErrInsufficientTokens)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConsume_NoValidBatches(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_tokens WHERE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userTokenRows))
	mock.ExpectRollback()

	_, err := repo.Consume(context.Background(), 7, 1)
	require.ErrorIs(t, err, ErrNoValidTokens)
}

func TestCountValidByUser(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(tokens_remaining), 0) FROM user_tokens WHERE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(8))

	count, err := repo.CountValidByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, 8, count)
}
