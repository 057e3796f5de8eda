package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-group-sync/internal/logger"
)

const kvTable = "kv_store"

type kvRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKeyValueRepository returns the SQLite [KeyValueStore] backed by the
// kv_store table.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueStore {
	return &kvRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *kvRepository) Save(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := sq.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, r.now()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvRepository.Save").
			Str("key", key).
			Msg("failed to upsert value")
		return fmt.Errorf("%w: save %q: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (r *kvRepository) Load(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	if key == "" {
		return "", false, ErrEmptyKey
	}

	query, args, err := sq.Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "kvRepository.Load").
			Str("key", key).
			Msg("failed to read value")
		return "", false, fmt.Errorf("%w: load %q: %w", ErrScanningRow, key, err)
	}

	return value, true, nil
}

func (r *kvRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(kvTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvRepository.Clear").
			Msg("failed to clear key-value store")
		return fmt.Errorf("%w: clear: %w", ErrExecutingStatement, err)
	}

	return nil
}
