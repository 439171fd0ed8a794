// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/spreadsheet"
	"github.com/MKhiriev/go-xray-viewer/internal/view"
)

// ExportFileName is the name of the file written by [ClientExportService].
const ExportFileName = "filtered_data.xlsx"

type clientExportService struct {
	dir    string
	logger *logger.Logger
}

func NewClientExportService(dir string, logger *logger.Logger) ClientExportService {
	if dir == "" {
		dir = "."
	}
	return &clientExportService{dir: dir, logger: logger}
}

func (s *clientExportService) Export(ctx context.Context, p view.Projection) (string, error) {
	log := logger.FromContext(ctx)

	if len(p.Filtered) == 0 {
		return "", ErrNothingToExport
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingExport, err)
	}

	path := filepath.Join(s.dir, ExportFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingExport, err)
	}

	if err = spreadsheet.Write(f, p.Columns, p.Filtered); err != nil {
		_ = f.Close()
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingExport, err)
	}

	log.Info().Str("path", path).Int("records", len(p.Filtered)).Msg("view exported")
	return path, nil
}
