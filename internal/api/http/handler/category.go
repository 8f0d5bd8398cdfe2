package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/logger"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

// CategoryService manages owner-scoped category operations.
type CategoryService interface {
	Create(ctx context.Context, params model.CreateCategoryParams) (model.Category, error)
	Get(ctx context.Context, userID, categoryID int64) (model.Category, error)
	List(ctx context.Context, userID int64) ([]model.Category, error)
	Update(ctx context.Context, params model.UpdateCategoryParams) (model.Category, error)
	Delete(ctx context.Context, userID, categoryID int64) error
}

// Category handles category endpoints. All routes are authenticated.
type Category struct {
	categoryService CategoryService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewCategory creates a new Category handler.
func NewCategory(categoryService CategoryService, contextManager model.ContextManager, logger *logger.Logger) *Category {
	return &Category{categoryService: categoryService, contextManager: contextManager, logger: logger}
}

type categoryRequest struct {
	Name string `json:"name" binding:"required,min=3,max=50"`
}

type categoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newCategoryResponse(category model.Category) categoryResponse {
	return categoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// Create handles POST /category.
func (h *Category) Create(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, model.ErrUnauthenticated)
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), model.CreateCategoryParams{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCategoryResponse(category))
}

// List handles GET /category.
func (h *Category) List(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, model.ErrUnauthenticated)
		return
	}

	categories, err := h.categoryService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		res = append(res, newCategoryResponse(category))
	}

	c.JSON(http.StatusOK, res)
}

// Get handles GET /category/:id.
func (h *Category) Get(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, model.ErrUnauthenticated)
		return
	}

	categoryID, err := pathID(c)
	if err != nil {
		respondError(c, model.ErrNotFound)
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), userID, categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCategoryResponse(category))
}

// Update handles PATCH /category/:id.
func (h *Category) Update(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, model.ErrUnauthenticated)
		return
	}

	categoryID, err := pathID(c)
	if err != nil {
		respondError(c, model.ErrNotFound)
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), model.UpdateCategoryParams{
		UserID:     userID,
		CategoryID: categoryID,
		Name:       req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCategoryResponse(category))
}

// Delete handles DELETE /category/:id.
func (h *Category) Delete(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, model.ErrUnauthenticated)
		return
	}

	categoryID, err := pathID(c)
	if err != nil {
		respondError(c, model.ErrNotFound)
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), userID, categoryID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
