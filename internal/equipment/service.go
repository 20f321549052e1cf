package equipment

import (
	"context"

	"padelhub/internal/facility"
)

type Service interface {
	Create(ctx context.Context, facilityID int64, req CreateEquipmentRequest) (*Equipment, error)
	GetByID(ctx context.Context, id int64) (*Equipment, error)
	GetAll(ctx context.Context) ([]Equipment, error)
	GetByFacility(ctx context.Context, facilityID int64) ([]Equipment, error)
	GetPurchasableByFacility(ctx context.Context, facilityID int64) ([]Equipment, error)
	GetRentableByFacility(ctx context.Context, facilityID int64) ([]Equipment, error)
	GetByFacilityAndType(ctx context.Context, facilityID int64, equipmentType EquipmentType) ([]Equipment, error)
	Update(ctx context.Context, id int64, req UpdateEquipmentRequest) (*Equipment, error)
	AdjustStock(ctx context.Context, id int64, delta int) (*Equipment, error)
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

func (s *service) Create(ctx context.Context, facilityID int64, req CreateEquipmentRequest) (*Equipment, error) {
	if _, err := s.facilityRepo.FindByID(ctx, facilityID); err != nil {
		return nil, facility.ErrFacilityNotFound
	}

	e := &Equipment{
		Name:                 req.Name,
		Description:          req.Description,
		ImageURL:             req.ImageURL,
		Type:                 req.Type,
		PurchasePrice:        req.PurchasePrice,
		RentalPrice:          req.RentalPrice,
		StockQuantity:        req.StockQuantity,
		AvailableForPurchase: req.AvailableForPurchase,
		AvailableForRental:   req.AvailableForRental,
		FacilityID:           facilityID,
	}

	return s.repo.Create(ctx, e)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Equipment, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEquipmentNotFound
	}
	return e, nil
}

func (s *service) GetAll(ctx context.Context) ([]Equipment, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetByFacility(ctx context.Context, facilityID int64) ([]Equipment, error) {
	if _, err := s.facilityRepo.FindByID(ctx, facilityID); err != nil {
		return nil, facility.ErrFacilityNotFound
	}
	return s.repo.FindByFacility(ctx, facilityID)
}

func (s *service) GetPurchasableByFacility(ctx context.Context, facilityID int64) ([]Equipment, error) {
	if _, err := s.facilityRepo.FindByID(ctx, facilityID); err != nil {
		return nil, facility.ErrFacilityNotFound
	}
	return s.repo.FindPurchasableByFacility(ctx, facilityID)
}

func (s *service) GetRentableByFacility(ctx context.Context, facilityID int64) ([]Equipment, error) {
	if _, err := s.facilityRepo.FindByID(ctx, facilityID); err != nil {
		return nil, facility.ErrFacilityNotFound
	}
	return s.repo.FindRentableByFacility(ctx, facilityID)
}

func (s *service) GetByFacilityAndType(ctx context.Context, facilityID int64, equipmentType EquipmentType) ([]Equipment, error) {
	if _, err := s.facilityRepo.FindByID(ctx, facilityID); err != nil {
		return nil, facility.ErrFacilityNotFound
	}
	return s.repo.FindByFacilityAndType(ctx, facilityID, equipmentType)
}

// Update replaces the catalog fields of an item. Stock and the owning
// facility are never touched here; stock moves only through AdjustStock
// and the transaction flows.
func (s *service) Update(ctx context.Context, id int64, req UpdateEquipmentRequest) (*Equipment, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEquipmentNotFound
	}

	e.Name = req.Name
	e.Description = req.Description
	e.ImageURL = req.ImageURL
	e.Type = req.Type
	e.PurchasePrice = req.PurchasePrice
	e.RentalPrice = req.RentalPrice
	e.AvailableForPurchase = req.AvailableForPurchase
	e.AvailableForRental = req.AvailableForRental

	return s.repo.Update(ctx, e)
}

func (s *service) AdjustStock(ctx context.Context, id int64, delta int) (*Equipment, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, ErrEquipmentNotFound
	}

	return s.repo.AdjustStock(ctx, id, delta)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
