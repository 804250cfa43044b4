package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"motohub/internal/auth"
	apperrors "motohub/internal/errors"
	"motohub/internal/model"
)

// MockAdminUserRepository is a mock implementation of AdminUserRepository.
type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) Create(ctx context.Context, user *model.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAdminUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestAuthService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("sekrit123"), bcryptCost)

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockAdminUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "admin",
			password: "sekrit123",
			setupMock: func(m *MockAdminUserRepository) {
				m.On("FindByUsername", mock.Anything, "admin").Return(&model.AdminUser{
					ID:           1,
					Username:     "admin",
					PasswordHash: string(hash),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "wrong",
			setupMock: func(m *MockAdminUserRepository) {
				m.On("FindByUsername", mock.Anything, "admin").Return(&model.AdminUser{
					ID:           1,
					Username:     "admin",
					PasswordHash: string(hash),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "sekrit123",
			setupMock: func(m *MockAdminUserRepository) {
				m.On("FindByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAdminUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService)

			token, expiry, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.WithinDuration(t, time.Now().Add(auth.SessionTokenExpiry), expiry, 5*time.Second)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Verify(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	service := NewAuthService(new(MockAdminUserRepository), jwtService)

	t.Run("fresh token is valid", func(t *testing.T) {
		token, _, err := jwtService.GenerateSessionToken(1, "admin")
		assert.NoError(t, err)

		claims, ok := service.Verify(token)
		assert.True(t, ok)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("malformed token is invalid", func(t *testing.T) {
		claims, ok := service.Verify("garbage")
		assert.False(t, ok)
		assert.Nil(t, claims)
	})

	t.Run("token signed with another secret is invalid", func(t *testing.T) {
		other := auth.NewJWTService("other-secret")
		token, _, err := other.GenerateSessionToken(1, "admin")
		assert.NoError(t, err)

		_, ok := service.Verify(token)
		assert.False(t, ok)
	})
}

func TestAuthService_SeedAdmin(t *testing.T) {
	t.Run("creates credential when none exists", func(t *testing.T) {
		mockRepo := new(MockAdminUserRepository)
		mockRepo.On("Count", mock.Anything).Return(int64(0), nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.AdminUser")).Return(nil)

		service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
		err := service.SeedAdmin(context.Background(), "admin", "sekrit123")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no-op when a credential exists", func(t *testing.T) {
		mockRepo := new(MockAdminUserRepository)
		mockRepo.On("Count", mock.Anything).Return(int64(1), nil)

		service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
		err := service.SeedAdmin(context.Background(), "admin", "sekrit123")

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
