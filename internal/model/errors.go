package model

import "errors"

var (
	// ErrNotFound is returned when a resource does not exist or is not
	// owned by the requesting user. The two cases are deliberately not
	// distinguishable by callers.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned on a name collision scoped to one owner,
	// and on duplicate user email/username at registration.
	ErrConflict = errors.New("name conflict")

	// ErrInvalidCredentials covers unknown identifier, missing hash and
	// password mismatch without distinguishing between them.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated covers missing, malformed, expired or
	// signature-invalid tokens, and tokens whose subject no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidInput is returned for malformed request input.
	ErrInvalidInput = errors.New("invalid input")
)
