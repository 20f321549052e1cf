package token

import "context"

type Repository interface {
	Create(ctx context.Context, ut *UserToken) (*UserToken, error)
	FindByID(ctx context.Context, id int64) (*UserToken, error)
	FindByUser(ctx context.Context, userID int64) ([]UserToken, error)
	// FindValidByUser returns the batches that still count toward the
	// user's balance: tokens remaining and not expired.
	FindValidByUser(ctx context.Context, userID int64) ([]UserToken, error)
	// CountValidByUser sums tokens_remaining across the user's valid
	// batches, zero when there are none.
	CountValidByUser(ctx context.Context, userID int64) (int, error)
	// Consume draws amount tokens from the user's valid batches in id
	// order inside a single transaction and returns the last batch
	// touched. Either every batch update commits or none does.
	Consume(ctx context.Context, userID int64, amount int) (*UserToken, error)
}
