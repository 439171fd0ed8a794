package server

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-xray-viewer/internal/config"
	myHTTP "github.com/MKhiriev/go-xray-viewer/internal/handler/http"
	"github.com/MKhiriev/go-xray-viewer/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

// PrintServer serves print documents on a loopback address. The listener is
// bound in [NewPrintServer], so [PrintServer.URL] is valid before
// [PrintServer.RunServer] is called.
type PrintServer struct {
	*httpServer
}

var _ Server = (*PrintServer)(nil)

// NewPrintServer binds cfg.Address and prepares handler's routes for
// serving. A port of 0 picks a free port.
func NewPrintServer(handler *myHTTP.Handler, cfg config.ClientPrint, logger *logger.Logger) (*PrintServer, error) {
	logger.Info().Str("address", cfg.Address).Msg("creating print server...")

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", errListening, cfg.Address, err)
	}

	return &PrintServer{
		httpServer: &httpServer{
			server: &http.Server{
				Handler:           handler.Init(),
				ReadHeaderTimeout: readHeaderTimeout,
			},
			listener: listener,
			logger:   logger,
		},
	}, nil
}

// URL returns the base URL documents are served under.
func (s *PrintServer) URL() string {
	return "http://" + s.listener.Addr().String()
}
