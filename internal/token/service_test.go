package token

import (
	"context"
	"testing"
	"time"

	"padelhub/internal/tokenpack"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, ut *UserToken) (*UserToken, error) {
	args := m.Called(ctx, ut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UserToken), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*UserToken, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UserToken), args.Error(1)
}

func (m *MockRepository) FindByUser(ctx context.Context, userID int64) ([]UserToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]UserToken), args.Error(1)
}

func (m *MockRepository) FindValidByUser(ctx context.Context, userID int64) ([]UserToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]UserToken), args.Error(1)
}

func (m *MockRepository) CountValidByUser(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Consume(ctx context.Context, userID int64, amount int) (*UserToken, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UserToken), args.Error(1)
}

// MockPackRepository is a mock implementation of tokenpack.Repository
type MockPackRepository struct {
	mock.Mock
}

func (m *MockPackRepository) Create(ctx context.Context, p *tokenpack.TokenPack) (*tokenpack.TokenPack, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenpack.TokenPack), args.Error(1)
}

func (m *MockPackRepository) FindByID(ctx context.Context, id int64) (*tokenpack.TokenPack, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenpack.TokenPack), args.Error(1)
}

func (m *MockPackRepository) FindAll(ctx context.Context) ([]tokenpack.TokenPack, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tokenpack.TokenPack), args.Error(1)
}

func (m *MockPackRepository) FindActive(ctx context.Context) ([]tokenpack.TokenPack, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tokenpack.TokenPack), args.Error(1)
}

func (m *MockPackRepository) Update(ctx context.Context, p *tokenpack.TokenPack) (*tokenpack.TokenPack, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenpack.TokenPack), args.Error(1)
}

func (m *MockPackRepository) SetActive(ctx context.Context, id int64, active bool) (*tokenpack.TokenPack, error) {
	args := m.Called(ctx, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenpack.TokenPack), args.Error(1)
}

func (m *MockPackRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_PurchasePack(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPacks := new(MockPackRepository)

	pack := &tokenpack.TokenPack{ID: 2, Name: "Starter", TokenCount: 10, Price: 50, Active: true}
	mockPacks.On("FindByID", mock.Anything, int64(2)).Return(pack, nil)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(ut *UserToken) bool {
		if ut.UserID != 7 || ut.TokenPackID != 2 || ut.TokensRemaining != 10 || ut.PurchaseAmount != 50 {
			return false
		}
		// Expiry lands one year out.
		if ut.ExpiryDate == nil {
			return false
		}
		expected := time.Now().AddDate(1, 0, 0)
		return ut.ExpiryDate.Sub(expected) < time.Minute && expected.Sub(*ut.ExpiryDate) < time.Minute
	})).Return(&UserToken{ID: 1, UserID: 7, TokenPackID: 2, TokensRemaining: 10}, nil)

	service := NewService(mockRepo, mockPacks)
	ut, err := service.PurchasePack(context.Background(), 7, 2)

	assert.NoError(t, err)
	assert.Equal(t, 10, ut.TokensRemaining)
	mockRepo.AssertExpectations(t)
}

func TestService_PurchasePack_InactivePack(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPacks := new(MockPackRepository)

	pack := &tokenpack.TokenPack{ID: 2, Name: "Retired", TokenCount: 10, Price: 50, Active: false}
	mockPacks.On("FindByID", mock.Anything, int64(2)).Return(pack, nil)

	service := NewService(mockRepo, mockPacks)
	_, err := service.PurchasePack(context.Background(), 7, 2)

	assert.ErrorIs(t, err, ErrPackNotAvailable)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_UseTokens_InvalidAmount(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPacks := new(MockPackRepository)

	service := NewService(mockRepo, mockPacks)
	_, err := service.UseTokens(context.Background(), 7, 0)

	assert.ErrorIs(t, err, ErrInvalidAmount)
	mockRepo.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UseTokens_DelegatesToLedger(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPacks := new(MockPackRepository)

	mockRepo.On("Consume", mock.Anything, int64(7), 3).Return(&UserToken{ID: 1, TokensRemaining: 2}, nil)

	service := NewService(mockRepo, mockPacks)
	batch, err := service.UseTokens(context.Background(), 7, 3)

	assert.NoError(t, err)
	assert.Equal(t, 2, batch.TokensRemaining)
}
