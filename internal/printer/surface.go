package printer

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/store"
	"github.com/MKhiriev/go-xray-viewer/models"
)

//go:generate mockgen -source=surface.go -destination=../mock/printer_mock.go -package=mock

// Surface displays a rendered print document to the user.
type Surface interface {
	// Open shows doc and returns where it can be reached.
	Open(ctx context.Context, doc []byte) (string, error)
}

// IDGenerator issues print document identifiers.
type IDGenerator interface {
	Generate() string
}

// Opener launches the system viewer for url.
type Opener func(ctx context.Context, url string) error

// browserSurface publishes documents through the local print server and
// opens them in the system browser.
type browserSurface struct {
	documents store.PrintDocumentRepository
	baseURL   string
	ids       IDGenerator
	open      Opener
	logger    *logger.Logger
}

// NewBrowserSurface returns a [Surface] that stores each document in
// documents and opens baseURL + "/print/{id}" with open.
func NewBrowserSurface(documents store.PrintDocumentRepository, baseURL string, ids IDGenerator, open Opener, logger *logger.Logger) Surface {
	return &browserSurface{
		documents: documents,
		baseURL:   strings.TrimRight(baseURL, "/"),
		ids:       ids,
		open:      open,
		logger:    logger,
	}
}

func (s *browserSurface) Open(ctx context.Context, doc []byte) (string, error) {
	id := s.ids.Generate()
	if err := s.documents.Save(ctx, models.PrintDocument{ID: id, HTML: doc}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrOpeningSurface, err)
	}

	url := s.baseURL + "/print/" + id
	if err := s.open(ctx, url); err != nil {
		s.logger.Err(err).Str("url", url).Msg("error launching browser")
		return url, fmt.Errorf("%w: %w", ErrOpeningSurface, err)
	}

	s.logger.Info().Str("url", url).Msg("print document opened")
	return url, nil
}

// CommandOpener returns an [Opener] running command with the URL appended
// as the last argument. An empty command picks the platform default.
func CommandOpener(command string) Opener {
	args := strings.Fields(command)
	if len(args) == 0 {
		args = defaultOpenCommand(runtime.GOOS)
	}

	// the browser must outlive the request context, so ctx is not bound to
	// the process
	return func(_ context.Context, url string) error {
		cmdArgs := append(append([]string(nil), args[1:]...), url)
		cmd := exec.Command(args[0], cmdArgs...)
		if err := cmd.Start(); err != nil {
			return err
		}
		go func() { _ = cmd.Wait() }()
		return nil
	}
}

func defaultOpenCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}
