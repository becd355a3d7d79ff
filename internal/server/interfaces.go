package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer serves requests until ctx is done or a transport fails, then
	// shuts every transport down gracefully.
	RunServer(ctx context.Context) error
}

// transport is one listener-backed server.
type transport interface {
	serve() error
	shutdown(ctx context.Context) error
	address() string
}
