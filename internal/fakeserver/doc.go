// Package fakeserver is an in-memory rendezvous server speaking the same
// JSON-over-POST protocol as the real one. Integration tests of the sync
// client run against it, and cmd/server serves it for local development.
// Nothing survives a restart.
package fakeserver
