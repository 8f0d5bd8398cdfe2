package model

// TokenManager generates and validates access tokens.
type TokenManager interface {
	GenerateAccessToken(userID int64, email string) (string, error)
	// ParseAccessToken checks signature and expiry and returns the
	// subject user id.
	ParseAccessToken(token string) (int64, error)
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string
}
