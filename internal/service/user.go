package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/logger"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

// User manages user registration and profile operations.
type User struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

// Register hashes the password, assigns the public GUID and inserts the
// user. Duplicate email or username surfaces as ErrConflict.
func (s *User) Register(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	s.logger.Debug("User service: registering user",
		"username", params.Username)

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		GUID:         uuid.New(),
		Email:        params.Email,
		Username:     params.Username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrConflict) {
		s.logger.Info("User service: registration conflict",
			"username", params.Username)
		return model.User{}, err
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user registered",
		"user_id", created.ID)

	return created.Sanitized(), nil
}

// Get returns the user's own profile.
func (s *User) Get(ctx context.Context, userID int64) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.Sanitized(), nil
}

// Update applies profile changes. Only username and email can change.
func (s *User) Update(ctx context.Context, params model.UpdateUserParams) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, params.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if params.Username != nil {
		user.Username = *params.Username
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	user.UpdatedAt = time.Now()

	updated, err := s.userStore.Update(ctx, user)
	if errors.Is(err, model.ErrConflict) {
		return model.User{}, err
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return updated.Sanitized(), nil
}

// Delete removes the user's account.
func (s *User) Delete(ctx context.Context, userID int64) error {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := s.userStore.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted",
		"user_id", userID)

	return nil
}
