package facility

import (
	"context"
)

type Service interface {
	Create(ctx context.Context, ownerID int64, req CreateFacilityRequest) (*Facility, error)
	GetByID(ctx context.Context, id int64) (*Facility, error)
	GetAll(ctx context.Context) ([]Facility, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]Facility, error)
	GetByCity(ctx context.Context, city string) ([]Facility, error)
	Update(ctx context.Context, id int64, req UpdateFacilityRequest) (*Facility, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, ownerID int64, req CreateFacilityRequest) (*Facility, error) {
	f := &Facility{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		OpeningHours: req.OpeningHours,
		OwnerID:      ownerID,
	}
	return s.repo.Create(ctx, f)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Facility, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrFacilityNotFound
	}
	return f, nil
}

func (s *service) GetAll(ctx context.Context) ([]Facility, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetByOwner(ctx context.Context, ownerID int64) ([]Facility, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *service) GetByCity(ctx context.Context, city string) ([]Facility, error) {
	return s.repo.FindByCity(ctx, city)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateFacilityRequest) (*Facility, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrFacilityNotFound
	}

	f.Name = req.Name
	f.Address = req.Address
	f.City = req.City
	f.Description = req.Description
	f.ImageURL = req.ImageURL
	f.ContactPhone = req.ContactPhone
	f.ContactEmail = req.ContactEmail
	f.OpeningHours = req.OpeningHours

	return s.repo.Update(ctx, f)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
