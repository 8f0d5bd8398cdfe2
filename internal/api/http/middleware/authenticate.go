package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/logger"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

// TokenService resolves bearer tokens to live users.
type TokenService interface {
	Authenticate(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the user id into the
// request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and puts
// the resolved user id on the request context. Missing, malformed and
// invalid tokens all end the request with 401.
func (m *Authenticate) Handle(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthenticated"})
		return
	}

	user, err := m.tokenService.Authenticate(c.Request.Context(), header[7:])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthenticated"})
		return
	}

	ctx := m.contextManager.SetUserIDToContext(c.Request.Context(), user.ID)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}
