// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStore.Get] when nothing is
	// stored under the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrDocumentNotFound is returned when a print document was never saved
	// or has already been evicted.
	ErrDocumentNotFound = errors.New("print document not found")

	// ErrEmptyKey is returned when an empty key is passed to the key-value
	// store.
	ErrEmptyKey = errors.New("empty storage key")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
