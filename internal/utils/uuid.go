package utils

import "github.com/google/uuid"

// NewEntryID returns a time-ordered UUIDv7 for a transcript entry, so entry
// ids sort in creation order. It falls back to a random UUID if the clock
// source fails.
func NewEntryID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
