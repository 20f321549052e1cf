package user

import (
	"context"
	"errors"
	"testing"

	"padelhub/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, username, email, passwordHash, firstName, lastName, role string) (*User, error) {
	args := m.Called(ctx, username, email, passwordHash, firstName, lastName, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockRepository) FindByRole(ctx context.Context, role string) ([]User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, u *User) (*User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name          string
		req           RegisterRequest
		setupMock     func(*MockRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			req: RegisterRequest{
				Username: "carlos",
				Email:    "carlos@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockRepository) {
				m.On("UsernameExists", mock.Anything, "carlos").Return(false, nil)
				m.On("EmailExists", mock.Anything, "carlos@example.com").Return(false, nil)
				m.On("Create", mock.Anything, "carlos", "carlos@example.com", mock.Anything, "", "", auth.RoleUser).Return(&User{
					ID:       1,
					Username: "carlos",
					Email:    "carlos@example.com",
					Role:     auth.RoleUser,
				}, nil)
			},
		},
		{
			name: "username taken",
			req: RegisterRequest{
				Username: "carlos",
				Email:    "other@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockRepository) {
				m.On("UsernameExists", mock.Anything, "carlos").Return(true, nil)
			},
			expectedError: ErrUsernameTaken,
		},
		{
			name: "email in use",
			req: RegisterRequest{
				Username: "ana",
				Email:    "carlos@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockRepository) {
				m.On("UsernameExists", mock.Anything, "ana").Return(false, nil)
				m.On("EmailExists", mock.Anything, "carlos@example.com").Return(true, nil)
			},
			expectedError: ErrEmailInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			service := NewService(mockRepo, "test-secret")
			u, accessToken, refreshToken, err := service.Register(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, u)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, auth.RoleUser, u.Role)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_Login(t *testing.T) {
	hash, _ := auth.HashPassword("password123")

	t.Run("successful login", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByUsername", mock.Anything, "carlos").Return(&User{
			ID:           1,
			Username:     "carlos",
			PasswordHash: hash,
			Role:         auth.RoleUser,
		}, nil)

		service := NewService(mockRepo, "test-secret")
		u, accessToken, _, err := service.Login(context.Background(), LoginRequest{
			Username: "carlos",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByUsername", mock.Anything, "carlos").Return(&User{
			ID:           1,
			Username:     "carlos",
			PasswordHash: hash,
		}, nil)

		service := NewService(mockRepo, "test-secret")
		_, _, _, err := service.Login(context.Background(), LoginRequest{
			Username: "carlos",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, errors.New("sql: no rows in result set"))

		service := NewService(mockRepo, "test-secret")
		_, _, _, err := service.Login(context.Background(), LoginRequest{
			Username: "ghost",
			Password: "password123",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	mockRepo := new(MockRepository)

	existing := &User{
		ID:       1,
		Username: "carlos",
		Email:    "carlos@example.com",
		Role:     auth.RoleUser,
	}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)
	mockRepo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(u *User) bool {
		// Username, email and role are not updatable through the profile.
		return u.FirstName == "Carlos" && u.PhoneNumber == "+34600111222" &&
			u.Username == "carlos" && u.Role == auth.RoleUser
	})).Return(existing, nil)

	service := NewService(mockRepo, "test-secret")
	_, err := service.UpdateProfile(context.Background(), 1, UpdateProfileRequest{
		FirstName:   "Carlos",
		PhoneNumber: "+34600111222",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
