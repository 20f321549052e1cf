package token

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrUserTokenNotFound  = errors.New("user token batch not found")
	ErrNoValidTokens      = errors.New("No valid tokens available for user")
	ErrInsufficientTokens = errors.New("Insufficient tokens available")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const userTokenColumns = `id, user_id, token_pack_id, tokens_remaining, purchase_amount, purchase_date, expiry_date`

const validBatchPredicate = `user_id = $1 AND tokens_remaining > 0 AND (expiry_date IS NULL OR expiry_date > NOW())`

func (r *repository) Create(ctx context.Context, ut *UserToken) (*UserToken, error) {
	query := `
		INSERT INTO user_tokens (user_id, token_pack_id, tokens_remaining, purchase_amount, expiry_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userTokenColumns

	var created UserToken
	err := r.db.GetContext(ctx, &created, query,
		ut.UserID, ut.TokenPackID, ut.TokensRemaining, ut.PurchaseAmount, ut.ExpiryDate,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*UserToken, error) {
	query := `SELECT ` + userTokenColumns + ` FROM user_tokens WHERE id = $1`

	var ut UserToken
	err := r.db.GetContext(ctx, &ut, query, id)
	if err != nil {
		return nil, err
	}

	return &ut, nil
}

func (r *repository) FindByUser(ctx context.Context, userID int64) ([]UserToken, error) {
	query := `SELECT ` + userTokenColumns + ` FROM user_tokens WHERE user_id = $1 ORDER BY id`

	var tokens []UserToken
	err := r.db.SelectContext(ctx, &tokens, query, userID)
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

func (r *repository) FindValidByUser(ctx context.Context, userID int64) ([]UserToken, error) {
	query := `SELECT ` + userTokenColumns + ` FROM user_tokens WHERE ` + validBatchPredicate + ` ORDER BY id`

	var tokens []UserToken
	err := r.db.SelectContext(ctx, &tokens, query, userID)
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

func (r *repository) CountValidByUser(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COALESCE(SUM(tokens_remaining), 0) FROM user_tokens WHERE ` + validBatchPredicate

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) Consume(ctx context.Context, userID int64, amount int) (*UserToken, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Lock the user's valid batches in id order so concurrent spends
	// serialize and cannot double-draw the same batch.
	var batches []UserToken
	err = tx.SelectContext(ctx, &batches,
		`SELECT `+userTokenColumns+` FROM user_tokens WHERE `+validBatchPredicate+` ORDER BY id FOR UPDATE`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	if len(batches) == 0 {
		return nil, ErrNoValidTokens
	}

	remaining := amount
	for i := range batches {
		batch := &batches[i]

		if batch.TokensRemaining >= remaining {
			batch.TokensRemaining -= remaining
			_, err = tx.ExecContext(ctx,
				`UPDATE user_tokens SET tokens_remaining = $1 WHERE id = $2`,
				batch.TokensRemaining, batch.ID,
			)
			if err != nil {
				return nil, err
			}

			if err := tx.Commit(); err != nil {
				return nil, err
			}
			return batch, nil
		}

		remaining -= batch.TokensRemaining
		batch.TokensRemaining = 0
		_, err = tx.ExecContext(ctx,
			`UPDATE user_tokens SET tokens_remaining = 0 WHERE id = $1`,
			batch.ID,
		)
		if err != nil {
			return nil, err
		}
	}

	// Rolling back here undoes the zeroed batches above, so a failed
	// spend never loses tokens.
	return nil, ErrInsufficientTokens
}
