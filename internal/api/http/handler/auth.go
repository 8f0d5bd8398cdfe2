package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/logger"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

// AuthService validates credentials and issues sessions.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (model.Session, error)
}

// Auth handles authentication endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

// The username field also accepts the account email.
type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login handles POST /auth/login.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{AccessToken: session.AccessToken})
}
