package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/logger"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

// TokenService verifies bearer tokens and resolves their subject to a
// live user record. The record is authoritative: a structurally valid
// token whose user is gone does not authenticate.
type TokenService struct {
	manager   model.TokenManager
	userStore model.UserStore
	logger    *logger.Logger
}

func NewTokenService(manager model.TokenManager, userStore model.UserStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, userStore: userStore, logger: logger}
}

// Authenticate parses the token and re-fetches the subject. Every
// failure mode maps to ErrUnauthenticated.
func (s *TokenService) Authenticate(ctx context.Context, tokenString string) (model.User, error) {
	userID, err := s.manager.ParseAccessToken(tokenString)
	if err != nil {
		s.logger.Debug("Token service: token rejected",
			"error", err.Error())
		return model.User{}, model.ErrUnauthenticated
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Token service: token subject no longer exists",
			"user_id", userID)
		return model.User{}, model.ErrUnauthenticated
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.Sanitized(), nil
}
