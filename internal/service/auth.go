package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/logger"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

// Auth validates credentials and issues sessions.
type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// ValidateCredentials resolves identifier against email or username and
// verifies the password. All failure modes collapse into
// ErrInvalidCredentials; the returned user never carries the hash.
func (a *Auth) ValidateCredentials(ctx context.Context, identifier, password string) (model.User, error) {
	user, err := a.userStore.GetByIdentifier(ctx, identifier)
	if errors.Is(err, model.ErrNotFound) {
		// No user, no hashing work.
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by identifier: %w", err)
	}

	if user.PasswordHash == "" {
		return model.User{}, model.ErrInvalidCredentials
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return model.User{}, model.ErrInvalidCredentials
	}

	return user.Sanitized(), nil
}

// Login validates credentials and issues a bearer token carrying the
// user id and email.
func (a *Auth) Login(ctx context.Context, identifier, password string) (model.Session, error) {
	user, err := a.ValidateCredentials(ctx, identifier, password)
	if err != nil {
		return model.Session{}, err
	}

	accessToken, err := a.tokenManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login successful",
		"user_id", user.ID)

	return model.Session{AccessToken: accessToken}, nil
}
