// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-xray-viewer/internal/logger"
)

const (
	localStorageTable  = "local_storage"
	columnStorageKey   = "storage_key"
	columnStorageValue = "storage_value"
	columnUpdatedAt    = "updated_at"

	upsertLocalStorageSuffix = "ON CONFLICT (" + columnStorageKey + ") DO UPDATE SET " +
		columnStorageValue + " = excluded." + columnStorageValue + ", " +
		columnUpdatedAt + " = excluded." + columnUpdatedAt
)

var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// sqliteKeyValueStore is the SQLite-backed implementation of [KeyValueStore].
// Values live in the "local_storage" table, one row per key.
type sqliteKeyValueStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteKeyValueStore constructs a [KeyValueStore] over a migrated
// SQLite connection.
func NewSQLiteKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	logger.Debug().Msg("creating sqlite key-value store")
	return &sqliteKeyValueStore{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	if key == "" {
		return "", ErrEmptyKey
	}

	query, args, err := sqliteBuilder.
		Select(columnStorageValue).
		From(localStorageTable).
		Where(sq.Eq{columnStorageKey: key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		log.Err(err).Str("func", "*sqliteKeyValueStore.Get").Str("key", key).Msg("error reading value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := sqliteBuilder.
		Insert(localStorageTable).
		Columns(columnStorageKey, columnStorageValue, columnUpdatedAt).
		Values(key, value, s.now().UTC()).
		Suffix(upsertLocalStorageSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteKeyValueStore.Set").Str("key", key).Msg("error writing value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := sqliteBuilder.
		Delete(localStorageTable).
		Where(sq.Eq{columnStorageKey: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteKeyValueStore.Delete").Str("key", key).Msg("error deleting value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
