package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/hasher"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/testutil"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/token"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(digest)
}

func TestAuthService_ValidateCredentials(t *testing.T) {
	storedHash := hashFor(t, "correct horse")

	tests := []struct {
		name       string
		identifier string
		password   string
		mockSetup  func(*MockUserStore)
		wantErr    error
	}{
		{
			name:       "valid credentials by email",
			identifier: "alice@example.com",
			password:   "correct horse",
			mockSetup: func(userStore *MockUserStore) {
				userStore.On("GetByIdentifier", mock.Anything, "alice@example.com").Return(model.User{
					ID:           1,
					Email:        "alice@example.com",
					Username:     "alice",
					PasswordHash: storedHash,
				}, nil)
			},
		},
		{
			name:       "valid credentials by username",
			identifier: "alice",
			password:   "correct horse",
			mockSetup: func(userStore *MockUserStore) {
				userStore.On("GetByIdentifier", mock.Anything, "alice").Return(model.User{
					ID:           1,
					Email:        "alice@example.com",
					Username:     "alice",
					PasswordHash: storedHash,
				}, nil)
			},
		},
		{
			name:       "wrong password",
			identifier: "alice",
			password:   "battery staple",
			mockSetup: func(userStore *MockUserStore) {
				userStore.On("GetByIdentifier", mock.Anything, "alice").Return(model.User{
					ID:           1,
					PasswordHash: storedHash,
				}, nil)
			},
			wantErr: model.ErrInvalidCredentials,
		},
		{
			name:       "unknown identifier",
			identifier: "nobody",
			password:   "whatever",
			mockSetup: func(userStore *MockUserStore) {
				userStore.On("GetByIdentifier", mock.Anything, "nobody").Return(model.User{}, model.ErrNotFound)
			},
			wantErr: model.ErrInvalidCredentials,
		},
		{
			name:       "user without stored hash",
			identifier: "alice",
			password:   "correct horse",
			mockSetup: func(userStore *MockUserStore) {
				userStore.On("GetByIdentifier", mock.Anything, "alice").Return(model.User{
					ID: 1,
				}, nil)
			},
			wantErr: model.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserStore := &MockUserStore{}
			tt.mockSetup(mockUserStore)

			service := NewAuth(mockUserStore, hasher.NewBcrypt(bcrypt.MinCost), token.NewJWT("test-secret"), testutil.MakeNoopLogger())

			user, err := service.ValidateCredentials(context.Background(), tt.identifier, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), user.ID)
				assert.Empty(t, user.PasswordHash, "secret must never cross the validation boundary")
			}

			mockUserStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_ValidateCredentials_StoreError(t *testing.T) {
	mockUserStore := &MockUserStore{}
	mockUserStore.On("GetByIdentifier", mock.Anything, "alice").Return(model.User{}, errors.New("database error"))

	service := NewAuth(mockUserStore, hasher.NewBcrypt(bcrypt.MinCost), token.NewJWT("test-secret"), testutil.MakeNoopLogger())

	_, err := service.ValidateCredentials(context.Background(), "alice", "correct horse")

	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuthService_Login(t *testing.T) {
	storedHash := hashFor(t, "correct horse")
	manager := token.NewJWT("test-secret")

	t.Run("issues a verifiable token", func(t *testing.T) {
		mockUserStore := &MockUserStore{}
		mockUserStore.On("GetByIdentifier", mock.Anything, "alice@example.com").Return(model.User{
			ID:           42,
			Email:        "alice@example.com",
			Username:     "alice",
			PasswordHash: storedHash,
		}, nil)

		service := NewAuth(mockUserStore, hasher.NewBcrypt(bcrypt.MinCost), manager, testutil.MakeNoopLogger())

		session, err := service.Login(context.Background(), "alice@example.com", "correct horse")
		require.NoError(t, err)
		require.NotEmpty(t, session.AccessToken)

		userID, err := manager.ParseAccessToken(session.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("invalid credentials do not produce a session", func(t *testing.T) {
		mockUserStore := &MockUserStore{}
		mockUserStore.On("GetByIdentifier", mock.Anything, "alice@example.com").Return(model.User{
			ID:           42,
			PasswordHash: storedHash,
		}, nil)

		service := NewAuth(mockUserStore, hasher.NewBcrypt(bcrypt.MinCost), manager, testutil.MakeNoopLogger())

		session, err := service.Login(context.Background(), "alice@example.com", "wrong")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		assert.Empty(t, session.AccessToken)
	})
}
