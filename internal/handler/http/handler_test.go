package http

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/store"
	"github.com/MKhiriev/go-xray-viewer/models"
)

// ---- Stub: PrintDocumentRepository ----

// failingDocuments always fails reads with err.
type failingDocuments struct {
	err error
}

func (f *failingDocuments) Save(context.Context, models.PrintDocument) error {
	return f.err
}

func (f *failingDocuments) Get(context.Context, string) (models.PrintDocument, error) {
	return models.PrintDocument{}, f.err
}

var errStorageBroken = errors.New("storage broken")

// newTestHandler builds a Handler with a nop logger and the given documents.
func newTestHandler(docs ...models.PrintDocument) *Handler {
	repo := store.NewPrintDocumentRepository(8)
	for _, d := range docs {
		_ = repo.Save(context.Background(), d)
	}
	return &Handler{documents: repo, logger: logger.Nop()}
}
