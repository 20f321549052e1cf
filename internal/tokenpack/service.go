package tokenpack

import "context"

type Service interface {
	Create(ctx context.Context, req CreateTokenPackRequest) (*TokenPack, error)
	GetByID(ctx context.Context, id int64) (*TokenPack, error)
	GetAll(ctx context.Context) ([]TokenPack, error)
	GetActive(ctx context.Context) ([]TokenPack, error)
	Update(ctx context.Context, id int64, req UpdateTokenPackRequest) (*TokenPack, error)
	SetActive(ctx context.Context, id int64, active bool) (*TokenPack, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateTokenPackRequest) (*TokenPack, error) {
	p := &TokenPack{
		Name:        req.Name,
		Description: req.Description,
		TokenCount:  req.TokenCount,
		Price:       req.Price,
		Discount:    req.Discount,
		Active:      req.Active,
	}

	return s.repo.Create(ctx, p)
}

func (s *service) GetByID(ctx context.Context, id int64) (*TokenPack, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrTokenPackNotFound
	}
	return p, nil
}

func (s *service) GetAll(ctx context.Context) ([]TokenPack, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetActive(ctx context.Context) ([]TokenPack, error) {
	return s.repo.FindActive(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateTokenPackRequest) (*TokenPack, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrTokenPackNotFound
	}

	p.Name = req.Name
	p.Description = req.Description
	p.TokenCount = req.TokenCount
	p.Price = req.Price
	p.Discount = req.Discount
	p.Active = req.Active

	return s.repo.Update(ctx, p)
}

func (s *service) SetActive(ctx context.Context, id int64, active bool) (*TokenPack, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, ErrTokenPackNotFound
	}

	return s.repo.SetActive(ctx, id, active)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
