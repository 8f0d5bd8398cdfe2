package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/logger"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

// SnippetService manages owner-scoped snippet operations.
type SnippetService interface {
	Create(ctx context.Context, params model.CreateSnippetParams) (model.Snippet, error)
	Get(ctx context.Context, userID, snippetID int64) (model.Snippet, error)
	List(ctx context.Context, userID int64) ([]model.Snippet, error)
	Update(ctx context.Context, params model.UpdateSnippetParams) (model.Snippet, error)
	Delete(ctx context.Context, userID, snippetID int64) error
}

// Snippet handles snippet endpoints. All routes are authenticated.
type Snippet struct {
	snippetService SnippetService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewSnippet creates a new Snippet handler.
func NewSnippet(snippetService SnippetService, contextManager model.ContextManager, logger *logger.Logger) *Snippet {
	return &Snippet{snippetService: snippetService, contextManager: contextManager, logger: logger}
}

type createSnippetRequest struct {
	Title      string `json:"title" binding:"required,min=3,max=200"`
	Content    string `json:"content" binding:"required,min=10,max=5000"`
	Language   string `json:"language" binding:"required,min=2,max=50"`
	CategoryID int64  `json:"categoryId" binding:"required"`
}

type updateSnippetRequest struct {
	Title      *string `json:"title" binding:"omitempty,min=3,max=200"`
	Content    *string `json:"content" binding:"omitempty,min=10,max=5000"`
	Language   *string `json:"language" binding:"omitempty,min=2,max=50"`
	CategoryID *int64  `json:"categoryId" binding:"omitempty"`
}

type snippetResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Language   string    `json:"language"`
	CategoryID int64     `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newSnippetResponse(snippet model.Snippet) snippetResponse {
	return snippetResponse{
		ID:         snippet.ID,
		Title:      snippet.Title,
		Content:    snippet.Content,
		Language:   snippet.Language,
		CategoryID: snippet.CategoryID,
		CreatedAt:  snippet.CreatedAt,
		UpdatedAt:  snippet.UpdatedAt,
	}
}

// Create handles POST /snippet.
func (h *Snippet) Create(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, model.ErrUnauthenticated)
		return
	}

	var req createSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	snippet, err := h.snippetService.Create(c.Request.Context(), model.CreateSnippetParams{
		UserID:     userID,
		Title:      req.Title,
		Content:    req.Content,
		Language:   req.Language,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newSnippetResponse(snippet))
}

// List handles GET /snippet.
func (h *Snippet) List(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, model.ErrUnauthenticated)
		return
	}

	snippets, err := h.snippetService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]snippetResponse, 0, len(snippets))
	for _, snippet := range snippets {
		res = append(res, newSnippetResponse(snippet))
	}

	c.JSON(http.StatusOK, res)
}

// Get handles GET /snippet/:id.
func (h *Snippet) Get(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, model.ErrUnauthenticated)
		return
	}

	snippetID, err := pathID(c)
	if err != nil {
		respondError(c, model.ErrNotFound)
		return
	}

	snippet, err := h.snippetService.Get(c.Request.Context(), userID, snippetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newSnippetResponse(snippet))
}

// Update handles PATCH /snippet/:id.
func (h *Snippet) Update(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, model.ErrUnauthenticated)
		return
	}

	snippetID, err := pathID(c)
	if err != nil {
		respondError(c, model.ErrNotFound)
		return
	}

	var req updateSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	snippet, err := h.snippetService.Update(c.Request.Context(), model.UpdateSnippetParams{
		UserID:     userID,
		SnippetID:  snippetID,
		Title:      req.Title,
		Content:    req.Content,
		Language:   req.Language,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newSnippetResponse(snippet))
}

// Delete handles DELETE /snippet/:id.
func (h *Snippet) Delete(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, model.ErrUnauthenticated)
		return
	}

	snippetID, err := pathID(c)
	if err != nil {
		respondError(c, model.ErrNotFound)
		return
	}

	if err := h.snippetService.Delete(c.Request.Context(), userID, snippetID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
