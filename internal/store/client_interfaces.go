package store

import (
	"context"

	"github.com/MKhiriev/go-group-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueStore is the local persistence primitive: string values stored
// under string keys in the local database.
type KeyValueStore interface {
	// Save creates or replaces the value stored under key.
	Save(ctx context.Context, key, value string) error
	// Load returns the value under key. A missing key is reported with
	// found == false and a nil error.
	Load(ctx context.Context, key string) (value string, found bool, err error)
	// Clear removes every stored key.
	Clear(ctx context.Context) error
}

// CredentialsRepository persists the group security engine snapshot.
type CredentialsRepository interface {
	// Save replaces the stored snapshot.
	Save(ctx context.Context, creds models.SerializedCredentials) error
	// Load returns the stored snapshot. found is false on first run. A blob
	// that cannot be decoded yields [ErrCorruptedCredentials].
	Load(ctx context.Context) (creds models.SerializedCredentials, found bool, err error)
	// Clear removes the stored snapshot.
	Clear(ctx context.Context) error
}
