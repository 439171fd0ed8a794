// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-xray-viewer/internal/logger"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestKeyValueStore(t *testing.T) (*sqliteKeyValueStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	s := NewSQLiteKeyValueStore(&DB{DB: db, logger: l}, l).(*sqliteKeyValueStore)
	s.now = func() time.Time { return fixedNow }

	return s, mock
}

const (
	selectValueSQL = "SELECT storage_value FROM local_storage WHERE storage_key = ?"
	upsertValueSQL = "INSERT INTO local_storage (storage_key,storage_value,updated_at) VALUES (?,?,?) ON CONFLICT (storage_key) DO UPDATE SET"
	deleteValueSQL = "DELETE FROM local_storage WHERE storage_key = ?"
)

// ── Get ──────────────────────────────────────────────────────────────────────

func TestSQLiteKeyValueStore_Get_Success(t *testing.T) {
	s, mock := newTestKeyValueStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectValueSQL)).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"storage_value"}).AddRow(`[{"username":"ann"}]`))

	value, err := s.Get(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, `[{"username":"ann"}]`, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKeyValueStore_Get_NotFound(t *testing.T) {
	s, mock := newTestKeyValueStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectValueSQL)).
		WithArgs("loggedInUser").
		WillReturnRows(sqlmock.NewRows([]string{"storage_value"}))

	_, err := s.Get(context.Background(), "loggedInUser")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKeyValueStore_Get_DBError(t *testing.T) {
	s, mock := newTestKeyValueStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectValueSQL)).
		WithArgs("users").
		WillReturnError(sql.ErrConnDone)

	_, err := s.Get(context.Background(), "users")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

// ── Set ──────────────────────────────────────────────────────────────────────

func TestSQLiteKeyValueStore_Set_Success(t *testing.T) {
	s, mock := newTestKeyValueStore(t)

	mock.ExpectExec(regexp.QuoteMeta(upsertValueSQL)).
		WithArgs("users", "[]", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), "users", "[]"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKeyValueStore_Set_DBError(t *testing.T) {
	s, mock := newTestKeyValueStore(t)

	mock.ExpectExec(regexp.QuoteMeta(upsertValueSQL)).
		WithArgs("users", "[]", sqlmock.AnyArg()).
		WillReturnError(sql.ErrTxDone)

	err := s.Set(context.Background(), "users", "[]")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestSQLiteKeyValueStore_Delete(t *testing.T) {
	tests := []struct {
		name    string
		result  error
		wantErr error
	}{
		{name: "deleted", result: nil},
		{name: "db error", result: sql.ErrConnDone, wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestKeyValueStore(t)

			exp := mock.ExpectExec(regexp.QuoteMeta(deleteValueSQL)).WithArgs("loggedInUser")
			if tt.result != nil {
				exp.WillReturnError(tt.result)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := s.Delete(context.Background(), "loggedInUser")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── Empty key ────────────────────────────────────────────────────────────────

func TestSQLiteKeyValueStore_EmptyKey(t *testing.T) {
	s, mock := newTestKeyValueStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.ErrorIs(t, s.Set(ctx, "", "v"), ErrEmptyKey)
	assert.ErrorIs(t, s.Delete(ctx, ""), ErrEmptyKey)

	assert.NoError(t, mock.ExpectationsWereMet())
}
