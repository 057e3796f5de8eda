package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/models"
)

// credentialsKey is the key-value store key holding the engine snapshot.
const credentialsKey = "credentials"

type credentialsRepository struct {
	kv     KeyValueStore
	logger *logger.Logger
}

// NewCredentialsRepository stores engine snapshots in kv.
func NewCredentialsRepository(kv KeyValueStore, logger *logger.Logger) CredentialsRepository {
	return &credentialsRepository{kv: kv, logger: logger}
}

func (r *credentialsRepository) Save(ctx context.Context, creds models.SerializedCredentials) error {
	data, err := SerializeCredentials(creds)
	if err != nil {
		return err
	}

	if err = r.kv.Save(ctx, credentialsKey, data); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

func (r *credentialsRepository) Load(ctx context.Context) (models.SerializedCredentials, bool, error) {
	log := logger.FromContext(ctx)

	data, found, err := r.kv.Load(ctx, credentialsKey)
	if err != nil {
		return models.SerializedCredentials{}, false, fmt.Errorf("load credentials: %w", err)
	}
	if !found {
		return models.SerializedCredentials{}, false, nil
	}

	creds, err := DeserializeCredentials(data)
	if err != nil {
		if errors.Is(err, ErrCorruptedCredentials) {
			log.Warn().
				Err(err).
				Str("func", "credentialsRepository.Load").
				Int("size", len(data)).
				Msg("stored credentials cannot be decoded")
		}
		return models.SerializedCredentials{}, true, err
	}

	return creds, true, nil
}

func (r *credentialsRepository) Clear(ctx context.Context) error {
	if err := r.kv.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
