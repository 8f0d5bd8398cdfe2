package model

import "context"

// Server is a transport server with a managed lifecycle.
type Server interface {
	Start() error
	Stop(ctx context.Context) error
	Address() string
}
