package http

import (
	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/store"
)

type Handler struct {
	documents store.PrintDocumentRepository

	logger *logger.Logger
}

func NewHandler(documents store.PrintDocumentRepository, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		documents: documents,
		logger:    logger,
	}
}
