package terrain

import (
	"context"

	"padelhub/internal/facility"
)

type Service interface {
	Create(ctx context.Context, facilityID int64, req CreateTerrainRequest) (*Terrain, error)
	GetByID(ctx context.Context, id int64) (*Terrain, error)
	GetAll(ctx context.Context) ([]Terrain, error)
	GetActive(ctx context.Context) ([]Terrain, error)
	GetByFacility(ctx context.Context, facilityID int64) ([]Terrain, error)
	GetActiveByFacility(ctx context.Context, facilityID int64) ([]Terrain, error)
	Update(ctx context.Context, id int64, req UpdateTerrainRequest) (*Terrain, error)
	SetStatus(ctx context.Context, id int64, active bool) (*Terrain, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo         Repository
	facilityRepo facility.Repository
}

func NewService(repo Repository, facilityRepo facility.Repository) Service {
	return &service{
		repo:         repo,
		facilityRepo: facilityRepo,
	}
}

func (s *service) Create(ctx context.Context, facilityID int64, req CreateTerrainRequest) (*Terrain, error) {
	if _, err := s.facilityRepo.FindByID(ctx, facilityID); err != nil {
		return nil, facility.ErrFacilityNotFound
	}

	t := &Terrain{
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		PricePerHour: req.PricePerHour,
		Indoor:       req.Indoor,
		Type:         req.Type,
		FacilityID:   facilityID,
	}
	return s.repo.Create(ctx, t)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Terrain, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrTerrainNotFound
	}
	return t, nil
}

func (s *service) GetAll(ctx context.Context) ([]Terrain, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetActive(ctx context.Context) ([]Terrain, error) {
	return s.repo.FindByActive(ctx, true)
}

func (s *service) GetByFacility(ctx context.Context, facilityID int64) ([]Terrain, error) {
	if _, err := s.facilityRepo.FindByID(ctx, facilityID); err != nil {
		return nil, facility.ErrFacilityNotFound
	}
	return s.repo.FindByFacility(ctx, facilityID)
}

func (s *service) GetActiveByFacility(ctx context.Context, facilityID int64) ([]Terrain, error) {
	if _, err := s.facilityRepo.FindByID(ctx, facilityID); err != nil {
		return nil, facility.ErrFacilityNotFound
	}
	return s.repo.FindByFacilityAndActive(ctx, facilityID, true)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateTerrainRequest) (*Terrain, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrTerrainNotFound
	}

	t.Name = req.Name
	t.Description = req.Description
	t.ImageURL = req.ImageURL
	t.PricePerHour = req.PricePerHour
	t.Indoor = req.Indoor
	t.Type = req.Type

	return s.repo.Update(ctx, t)
}

func (s *service) SetStatus(ctx context.Context, id int64, active bool) (*Terrain, error) {
	t, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, ErrTerrainNotFound
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
