// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-xray-viewer/internal/config"
	"github.com/MKhiriev/go-xray-viewer/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// KeyValue is the SQLite-backed local storage for accounts and the
	// active session.
	KeyValue KeyValueStore
	// Records holds the most recently imported spreadsheet.
	Records RecordRepository
	// PrintDocuments holds rendered print pages until the browser loads them.
	PrintDocuments PrintDocumentRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the key-value store and the in-memory repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		KeyValue:       NewSQLiteKeyValueStore(db, logger),
		Records:        NewRecordRepository(),
		PrintDocuments: NewPrintDocumentRepository(cfg.PrintDocumentLimit),
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
