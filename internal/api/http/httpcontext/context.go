package httpcontext

import "context"

type contextKey string

// userIDKey is the context key used to store and retrieve the
// authenticated user id.
const userIDKey contextKey = "user_id"

// Manager represents a request context manager for user id operations.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a new context carrying the user id.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the user id from the context.
// It returns the id and a boolean indicating if the id was found.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
