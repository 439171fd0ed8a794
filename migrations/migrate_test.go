// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // no expectations: every statement goose issues fails

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	body, err := embedMigrations.ReadFile("00001_create_local_storage.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "local_storage")
}
