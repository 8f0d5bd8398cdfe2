package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

// respondError maps error kinds to transport status codes. Not-found
// and not-owned arrive here already collapsed into model.ErrNotFound.
func respondError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		code = http.StatusUnauthorized
		message = "invalid credentials"
	case errors.Is(err, model.ErrUnauthenticated):
		code = http.StatusUnauthorized
		message = "unauthenticated"
	case errors.Is(err, model.ErrNotFound):
		code = http.StatusNotFound
		message = "resource not found"
	case errors.Is(err, model.ErrConflict):
		code = http.StatusConflict
		message = "name already exists"
	case errors.Is(err, model.ErrInvalidInput):
		code = http.StatusBadRequest
		message = "invalid input"
	}

	_ = c.Error(err)
	c.JSON(code, gin.H{"statusCode": code, "message": message})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"statusCode": http.StatusBadRequest,
		"message":    err.Error(),
	})
}
