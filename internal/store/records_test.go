// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-xray-viewer/models"
)

func sampleSet(patients ...string) models.RecordSet {
	set := models.RecordSet{Columns: []string{models.ColumnPatient}}
	for _, p := range patients {
		set.Records = append(set.Records, models.Record{models.ColumnPatient: p})
	}
	return set
}

func TestRecordRepository_EmptyByDefault(t *testing.T) {
	r := NewRecordRepository()

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Snapshot().Records)
}

func TestRecordRepository_ReplaceIsWholesale(t *testing.T) {
	r := NewRecordRepository()

	r.Replace(sampleSet("a", "b", "c"))
	assert.Equal(t, 3, r.Len())

	r.Replace(sampleSet("z"))
	snap := r.Snapshot()
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, "z", snap.Records[0].Get(models.ColumnPatient))
}

func TestRecordRepository_SnapshotIsCopy(t *testing.T) {
	r := NewRecordRepository()
	input := sampleSet("a")
	r.Replace(input)

	input.Records[0][models.ColumnPatient] = "mutated input"
	snap := r.Snapshot()
	snap.Records[0][models.ColumnPatient] = "mutated snapshot"
	snap.Columns[0] = "mutated column"

	again := r.Snapshot()
	assert.Equal(t, "a", again.Records[0].Get(models.ColumnPatient))
	assert.Equal(t, models.ColumnPatient, again.Columns[0])
}

func TestRecordRepository_ConcurrentReplace(t *testing.T) {
	r := NewRecordRepository()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Replace(sampleSet("a", "b"))
		}()
		go func() {
			defer wg.Done()
			n := len(r.Snapshot().Records)
			assert.Contains(t, []int{0, 2}, n)
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, r.Len())
}

func TestRecordRepository_Clear(t *testing.T) {
	r := NewRecordRepository()
	r.Replace(sampleSet("a", "b"))

	r.Clear()

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Snapshot().Records)
	assert.Empty(t, r.Snapshot().Columns)

	// clearing an empty repository is a no-op
	r.Clear()
	assert.Equal(t, 0, r.Len())
}
