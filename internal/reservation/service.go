package reservation

import (
	"context"
	"errors"
	"time"

	"padelhub/internal/terrain"
)

var ErrInvalidTimeRange = errors.New("end time must be after start time")

type Service interface {
	IsTimeSlotAvailable(ctx context.Context, terrainID int64, start, end time.Time) (bool, error)
	Create(ctx context.Context, userID, terrainID int64, req CreateReservationRequest) (*Reservation, error)
	GetByID(ctx context.Context, id int64) (*Reservation, error)
	GetAll(ctx context.Context) ([]Reservation, error)
	GetByUser(ctx context.Context, userID int64) ([]Reservation, error)
	GetByUserAndStatus(ctx context.Context, userID int64, status Status) ([]Reservation, error)
	GetByTerrain(ctx context.Context, terrainID int64) ([]Reservation, error)
	GetByTerrainAndStatus(ctx context.Context, terrainID int64, status Status) ([]Reservation, error)
	GetByFacility(ctx context.Context, facilityID int64) ([]Reservation, error)
	GetByFacilityOwner(ctx context.Context, ownerID int64) ([]Reservation, error)
	Update(ctx context.Context, id int64, req UpdateReservationRequest) (*Reservation, error)
	ChangeStatus(ctx context.Context, id int64, status Status) (*Reservation, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo        Repository
	terrainRepo terrain.Repository
}

func NewService(repo Repository, terrainRepo terrain.Repository) Service {
	return &service{
		repo:        repo,
		terrainRepo: terrainRepo,
	}
}

// IsTimeSlotAvailable reports whether no non-cancelled reservation on the
// terrain overlaps the half-open interval [start, end).
func (s *service) IsTimeSlotAvailable(ctx context.Context, terrainID int64, start, end time.Time) (bool, error) {
	if _, err := s.terrainRepo.FindByID(ctx, terrainID); err != nil {
		return false, terrain.ErrTerrainNotFound
	}

	count, err := s.repo.CountOverlapping(ctx, terrainID, start, end)
	if err != nil {
		return false, err
	}

	return count == 0, nil
}

// Create books a confirmed reservation. The price is the terrain's hourly
// rate times the booking length in whole hours, truncated: a 90-minute
// booking is billed as one hour.
func (s *service) Create(ctx context.Context, userID, terrainID int64, req CreateReservationRequest) (*Reservation, error) {
	t, err := s.terrainRepo.FindByID(ctx, terrainID)
	if err != nil {
		return nil, terrain.ErrTerrainNotFound
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	hours := int64(req.EndTime.Sub(req.StartTime) / time.Hour)
	price := t.PricePerHour * float64(hours)

	res := &Reservation{
		TerrainID: terrainID,
		UserID:    userID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Price:     price,
		Notes:     req.Notes,
	}

	return s.repo.CreateConfirmed(ctx, res)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Reservation, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	return res, nil
}

func (s *service) GetAll(ctx context.Context) ([]Reservation, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetByUser(ctx context.Context, userID int64) ([]Reservation, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *service) GetByUserAndStatus(ctx context.Context, userID int64, status Status) ([]Reservation, error) {
	return s.repo.FindByUserAndStatus(ctx, userID, status)
}

func (s *service) GetByTerrain(ctx context.Context, terrainID int64) ([]Reservation, error) {
	if _, err := s.terrainRepo.FindByID(ctx, terrainID); err != nil {
		return nil, terrain.ErrTerrainNotFound
	}
	return s.repo.FindByTerrain(ctx, terrainID)
}

func (s *service) GetByTerrainAndStatus(ctx context.Context, terrainID int64, status Status) ([]Reservation, error) {
	if _, err := s.terrainRepo.FindByID(ctx, terrainID); err != nil {
		return nil, terrain.ErrTerrainNotFound
	}
	return s.repo.FindByTerrainAndStatus(ctx, terrainID, status)
}

func (s *service) GetByFacility(ctx context.Context, facilityID int64) ([]Reservation, error) {
	return s.repo.FindByFacility(ctx, facilityID)
}

func (s *service) GetByFacilityOwner(ctx context.Context, ownerID int64) ([]Reservation, error) {
	return s.repo.FindByFacilityOwner(ctx, ownerID)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateReservationRequest) (*Reservation, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrReservationNotFound
	}

	res.StartTime = req.StartTime
	res.EndTime = req.EndTime
	res.Price = req.Price
	res.Notes = req.Notes

	return s.repo.Update(ctx, res)
}

func (s *service) ChangeStatus(ctx context.Context, id int64, status Status) (*Reservation, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, ErrReservationNotFound
	}

	return s.repo.ChangeStatus(ctx, id, status)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
