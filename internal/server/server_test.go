package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-xray-viewer/internal/config"
	myHTTP "github.com/MKhiriev/go-xray-viewer/internal/handler/http"
	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/store"
	"github.com/MKhiriev/go-xray-viewer/models"
)

func TestPrintServer_ServesDocuments(t *testing.T) {
	docs := store.NewPrintDocumentRepository(4)
	require.NoError(t, docs.Save(context.Background(), models.PrintDocument{ID: "doc", HTML: []byte("<p>card</p>")}))

	srv, err := NewPrintServer(myHTTP.NewHandler(docs, logger.Nop()), config.ClientPrint{Address: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		srv.RunServer()
		close(done)
	}()

	client := resty.New()

	resp, err := client.R().Get(srv.URL() + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = client.R().Get(srv.URL() + "/print/doc")
	require.NoError(t, err)
	assert.Equal(t, "<p>card</p>", resp.String())

	srv.Shutdown()
	<-done
}

func TestNewPrintServer_BadAddress(t *testing.T) {
	_, err := NewPrintServer(myHTTP.NewHandler(store.NewPrintDocumentRepository(1), logger.Nop()),
		config.ClientPrint{Address: "not-an-address"}, logger.Nop())

	assert.ErrorIs(t, err, errListening)
}
