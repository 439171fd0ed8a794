// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-xray-viewer/models"
)

func TestPrintDocumentRepository_SaveGet(t *testing.T) {
	r := NewPrintDocumentRepository(2)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, models.PrintDocument{ID: "a", HTML: []byte("<p>a</p>")}))

	doc, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", doc.ID)
	assert.Equal(t, "<p>a</p>", string(doc.HTML))
}

func TestPrintDocumentRepository_EvictsOldest(t *testing.T) {
	r := NewPrintDocumentRepository(2)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, r.Save(ctx, models.PrintDocument{ID: id, HTML: []byte(id)}))
	}

	_, err := r.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	for _, id := range []string{"b", "c"} {
		_, err := r.Get(ctx, id)
		assert.NoError(t, err, id)
	}
}

func TestPrintDocumentRepository_OverwriteKeepsSlot(t *testing.T) {
	r := NewPrintDocumentRepository(2)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, models.PrintDocument{ID: "a", HTML: []byte("1")}))
	require.NoError(t, r.Save(ctx, models.PrintDocument{ID: "a", HTML: []byte("2")}))
	require.NoError(t, r.Save(ctx, models.PrintDocument{ID: "b", HTML: []byte("3")}))

	doc, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "2", string(doc.HTML))
}

func TestPrintDocumentRepository_Errors(t *testing.T) {
	r := NewPrintDocumentRepository(0)
	ctx := context.Background()

	assert.ErrorIs(t, r.Save(ctx, models.PrintDocument{}), ErrEmptyKey)

	_, err := r.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
