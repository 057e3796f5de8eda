// Package server runs the rendezvous server over HTTP.
//
// It owns the listener lifecycle: startup, stop on context cancellation and
// graceful shutdown.
package server
