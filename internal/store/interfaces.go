// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-xray-viewer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is a string-keyed persistent store. It plays the role of
// the browser's local storage for account and session data.
type KeyValueStore interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// RecordRepository holds the records of the most recent import.
type RecordRepository interface {
	// Replace swaps the whole record set in one step.
	Replace(set models.RecordSet)
	// Snapshot returns a copy of the current record set.
	Snapshot() models.RecordSet
	// Len returns the number of stored records.
	Len() int
	// Clear drops every record and column.
	Clear()
}

// PrintDocumentRepository keeps rendered print documents until the browser
// fetches them.
type PrintDocumentRepository interface {
	Save(ctx context.Context, doc models.PrintDocument) error
	Get(ctx context.Context, id string) (models.PrintDocument, error)
}
