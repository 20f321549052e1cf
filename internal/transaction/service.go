package transaction

import (
	"context"
	"errors"
	"time"

	"padelhub/internal/equipment"
	"padelhub/internal/facility"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

type Service interface {
	Purchase(ctx context.Context, userID, equipmentID int64, quantity int) (*Transaction, error)
	Rent(ctx context.Context, userID, equipmentID int64, quantity int, returnDate *time.Time) (*Transaction, error)
	Return(ctx context.Context, id int64) (*Transaction, error)
	Cancel(ctx context.Context, id int64) (*Transaction, error)
	GetByID(ctx context.Context, id int64) (*Transaction, error)
	GetAll(ctx context.Context) ([]Transaction, error)
	GetByUser(ctx context.Context, userID int64) ([]Transaction, error)
	GetByEquipment(ctx context.Context, equipmentID int64) ([]Transaction, error)
	GetByFacility(ctx context.Context, facilityID int64) ([]Transaction, error)
	GetActiveRentalsByUser(ctx context.Context, userID int64) ([]Transaction, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]Transaction, error)
}

type service struct {
	repo          Repository
	equipmentRepo equipment.Repository
	facilityRepo  facility.Repository
}

func NewService(repo Repository, equipmentRepo equipment.Repository, facilityRepo facility.Repository) Service {
	return &service{
		repo:          repo,
		equipmentRepo: equipmentRepo,
		facilityRepo:  facilityRepo,
	}
}

func (s *service) Purchase(ctx context.Context, userID, equipmentID int64, quantity int) (*Transaction, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.equipmentRepo.FindByID(ctx, equipmentID); err != nil {
		return nil, equipment.ErrEquipmentNotFound
	}

	return s.repo.Purchase(ctx, userID, equipmentID, quantity)
}

func (s *service) Rent(ctx context.Context, userID, equipmentID int64, quantity int, returnDate *time.Time) (*Transaction, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.equipmentRepo.FindByID(ctx, equipmentID); err != nil {
		return nil, equipment.ErrEquipmentNotFound
	}

	return s.repo.Rent(ctx, userID, equipmentID, quantity, returnDate)
}

func (s *service) Return(ctx context.Context, id int64) (*Transaction, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, ErrTransactionNotFound
	}

	return s.repo.Return(ctx, id)
}

func (s *service) Cancel(ctx context.Context, id int64) (*Transaction, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, ErrTransactionNotFound
	}

	return s.repo.Cancel(ctx, id)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Transaction, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	return t, nil
}

func (s *service) GetAll(ctx context.Context) ([]Transaction, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetByUser(ctx context.Context, userID int64) ([]Transaction, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *service) GetByEquipment(ctx context.Context, equipmentID int64) ([]Transaction, error) {
	if _, err := s.equipmentRepo.FindByID(ctx, equipmentID); err != nil {
		return nil, equipment.ErrEquipmentNotFound
	}
	return s.repo.FindByEquipment(ctx, equipmentID)
}

func (s *service) GetByFacility(ctx context.Context, facilityID int64) ([]Transaction, error) {
	if _, err := s.facilityRepo.FindByID(ctx, facilityID); err != nil {
		return nil, facility.ErrFacilityNotFound
	}
	return s.repo.FindByFacility(ctx, facilityID)
}

func (s *service) GetActiveRentalsByUser(ctx context.Context, userID int64) ([]Transaction, error) {
	return s.repo.FindActiveRentalsByUser(ctx, userID)
}

func (s *service) GetByDateRange(ctx context.Context, from, to time.Time) ([]Transaction, error) {
	return s.repo.FindByDateRange(ctx, from, to)
}
