// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"

	"github.com/MKhiriev/go-xray-viewer/models"
)

// recordRepository keeps the imported records in memory. Readers always see
// either the previous or the new set, never a mix.
type recordRepository struct {
	mu  sync.RWMutex
	set models.RecordSet
}

// NewRecordRepository returns an empty [RecordRepository].
func NewRecordRepository() RecordRepository {
	return &recordRepository{}
}

func (r *recordRepository) Replace(set models.RecordSet) {
	set = set.Clone()

	r.mu.Lock()
	r.set = set
	r.mu.Unlock()
}

func (r *recordRepository) Snapshot() models.RecordSet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.set.Clone()
}

func (r *recordRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.set.Len()
}

func (r *recordRepository) Clear() {
	r.mu.Lock()
	r.set = models.RecordSet{}
	r.mu.Unlock()
}
