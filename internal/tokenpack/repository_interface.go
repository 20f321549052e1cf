package tokenpack

import "context"

type Repository interface {
	Create(ctx context.Context, p *TokenPack) (*TokenPack, error)
	FindByID(ctx context.Context, id int64) (*TokenPack, error)
	FindAll(ctx context.Context) ([]TokenPack, error)
	FindActive(ctx context.Context) ([]TokenPack, error)
	Update(ctx context.Context, p *TokenPack) (*TokenPack, error)
	SetActive(ctx context.Context, id int64, active bool) (*TokenPack, error)
	Delete(ctx context.Context, id int64) error
}
