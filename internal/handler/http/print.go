package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/store"
)

func (h *Handler) getPrintDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	documentID := chi.URLParam(r, "documentID")

	doc, err := h.documents.Get(r.Context(), documentID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDocumentNotFound):
			log.Warn().Str("document_id", documentID).Msg("print document not found")
			http.Error(w, "print document not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("document_id", documentID).Msg("unexpected error reading print document")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(doc.HTML); err != nil {
		log.Err(err).Msg("error writing print document")
	}
}
