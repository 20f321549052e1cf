package token

import (
	"context"
	"errors"
	"time"

	"padelhub/internal/tokenpack"
)

var (
	ErrPackNotAvailable = errors.New("The selected token pack is not available for purchase")
	ErrInvalidAmount    = errors.New("token amount must be at least 1")
)

// tokenValidity is how long a purchased batch stays spendable.
const tokenValidity = 1 // years

type Service interface {
	PurchasePack(ctx context.Context, userID, packID int64) (*UserToken, error)
	UseTokens(ctx context.Context, userID int64, amount int) (*UserToken, error)
	GetByUser(ctx context.Context, userID int64) ([]UserToken, error)
	GetValidByUser(ctx context.Context, userID int64) ([]UserToken, error)
	GetBalance(ctx context.Context, userID int64) (int, error)
}

type service struct {
	repo     Repository
	packRepo tokenpack.Repository
}

func NewService(repo Repository, packRepo tokenpack.Repository) Service {
	return &service{
		repo:     repo,
		packRepo: packRepo,
	}
}

// PurchasePack credits the user with a new batch holding the pack's full
// token count, expiring one year from purchase.
func (s *service) PurchasePack(ctx context.Context, userID, packID int64) (*UserToken, error) {
	pack, err := s.packRepo.FindByID(ctx, packID)
	if err != nil {
		return nil, tokenpack.ErrTokenPackNotFound
	}
	if !pack.Active {
		return nil, ErrPackNotAvailable
	}

	expiry := time.Now().AddDate(tokenValidity, 0, 0)

	ut := &UserToken{
		UserID:          userID,
		TokenPackID:     pack.ID,
		TokensRemaining: pack.TokenCount,
		PurchaseAmount:  pack.Price,
		ExpiryDate:      &expiry,
	}

	return s.repo.Create(ctx, ut)
}

func (s *service) UseTokens(ctx context.Context, userID int64, amount int) (*UserToken, error) {
	if amount < 1 {
		return nil, ErrInvalidAmount
	}

	return s.repo.Consume(ctx, userID, amount)
}

func (s *service) GetByUser(ctx context.Context, userID int64) ([]UserToken, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *service) GetValidByUser(ctx context.Context, userID int64) ([]UserToken, error) {
	return s.repo.FindValidByUser(ctx, userID)
}

func (s *service) GetBalance(ctx context.Context, userID int64) (int, error) {
	return s.repo.CountValidByUser(ctx, userID)
}
