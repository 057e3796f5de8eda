package engine

import "errors"

// Sentinel errors returned by the native engine. Callers match them with
// [errors.Is].
var (
	// ErrGroupNotFound is returned when a group ID is not joined locally.
	ErrGroupNotFound = errors.New("group not found")

	// ErrGroupExists is returned when a group name is already taken.
	ErrGroupExists = errors.New("group already exists")

	// ErrInviteNotFound is returned when no pending invite exists for a group.
	ErrInviteNotFound = errors.New("pending invite not found")

	// ErrInvalidKeyPackage is returned when a key package cannot be parsed or
	// its signature does not verify.
	ErrInvalidKeyPackage = errors.New("invalid key package")

	// ErrUndecryptable is returned when a ciphertext or welcome cannot be
	// opened with the local keys, typically because local state diverged
	// from the group's.
	ErrUndecryptable = errors.New("message cannot be decrypted")

	// ErrSenderMismatch is returned when the sender claimed by the transport
	// differs from the authenticated sender inside the ciphertext.
	ErrSenderMismatch = errors.New("sender does not match message author")

	// ErrForeignMessage is returned when a batch record belongs to another group.
	ErrForeignMessage = errors.New("message belongs to another group")

	// ErrIndexRegression is returned when an index would move backwards.
	ErrIndexRegression = errors.New("index cannot decrease")

	// ErrInvalidState is returned when a credentials snapshot cannot be loaded.
	ErrInvalidState = errors.New("invalid engine state")
)
