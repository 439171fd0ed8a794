// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-xray-viewer/models"
)

// printDocumentRepository is a bounded in-memory [PrintDocumentRepository].
// When the limit is reached the oldest document is evicted.
type printDocumentRepository struct {
	mu    sync.Mutex
	limit int
	order []string
	docs  map[string][]byte
}

// NewPrintDocumentRepository returns a repository keeping at most limit
// documents. A non-positive limit keeps a single document.
func NewPrintDocumentRepository(limit int) PrintDocumentRepository {
	if limit <= 0 {
		limit = 1
	}
	return &printDocumentRepository{
		limit: limit,
		docs:  make(map[string][]byte, limit),
	}
}

func (r *printDocumentRepository) Save(_ context.Context, doc models.PrintDocument) error {
	if doc.ID == "" {
		return ErrEmptyKey
	}

	body := append([]byte(nil), doc.HTML...)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.docs[doc.ID]; !exists {
		r.order = append(r.order, doc.ID)
	}
	r.docs[doc.ID] = body

	for len(r.order) > r.limit {
		delete(r.docs, r.order[0])
		r.order = r.order[1:]
	}

	return nil
}

func (r *printDocumentRepository) Get(_ context.Context, id string) (models.PrintDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	body, ok := r.docs[id]
	if !ok {
		return models.PrintDocument{}, ErrDocumentNotFound
	}
	return models.PrintDocument{ID: id, HTML: append([]byte(nil), body...)}, nil
}
