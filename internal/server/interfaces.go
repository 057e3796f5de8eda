package server

import "context"

// Server defines the lifecycle contract of the rendezvous HTTP server.
//
// Implementations block in [RunServer] until ctx is cancelled and release
// resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until ctx is done and
	// the server has stopped.
	RunServer(ctx context.Context)

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
