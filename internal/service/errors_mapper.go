package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-group-sync/internal/adapter"
	"github.com/MKhiriev/go-group-sync/internal/engine"
)

// mapAdapterError translates transport errors of a send into service errors.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrConflict) {
		return fmt.Errorf("%w: %w", ErrIndexConflict, err)
	}
	return err
}

// mapEngineError keeps the engine error in the chain while exposing the
// service sentinel.
func mapEngineError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, engine.ErrGroupNotFound) {
		return fmt.Errorf("%w: %w", ErrGroupNotFound, err)
	}
	return err
}
