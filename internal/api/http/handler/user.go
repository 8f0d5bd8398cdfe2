package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/logger"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

// UserService manages user registration and profile operations.
type UserService interface {
	Register(ctx context.Context, params model.CreateUserParams) (model.User, error)
	Get(ctx context.Context, userID int64) (model.User, error)
	Update(ctx context.Context, params model.UpdateUserParams) (model.User, error)
	Delete(ctx context.Context, userID int64) error
}

// User handles user endpoints.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{userService: userService, contextManager: contextManager, logger: logger}
}

type createUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8"`
}

type updateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=254"`
}

// userResponse is built field by field so the password hash can never
// leak by accident.
type userResponse struct {
	ID        int64     `json:"id"`
	GUID      string    `json:"guid"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{
		ID:        u.ID,
		GUID:      u.GUID.String(),
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Register handles POST /user.
func (h *User) Register(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), model.CreateUserParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Me handles GET /user/me.
func (h *User) Me(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, model.ErrUnauthenticated)
		return
	}

	user, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateMe handles PATCH /user/me.
func (h *User) UpdateMe(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, model.ErrUnauthenticated)
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), model.UpdateUserParams{
		UserID:   userID,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteMe handles DELETE /user/me.
func (h *User) DeleteMe(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, model.ErrUnauthenticated)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
