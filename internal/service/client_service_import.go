// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/MKhiriev/go-xray-viewer/internal/app"
	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/spreadsheet"
	"github.com/MKhiriev/go-xray-viewer/internal/store"
	"github.com/MKhiriev/go-xray-viewer/internal/utils"
	"github.com/MKhiriev/go-xray-viewer/models"
)

type clientImportService struct {
	records store.RecordRepository
	client  *utils.HTTPClient
	logger  *logger.Logger
}

func NewClientImportService(records store.RecordRepository, client *utils.HTTPClient, logger *logger.Logger) ClientImportService {
	return &clientImportService{records: records, client: client, logger: logger}
}

func (s *clientImportService) Import(ctx context.Context, source string) (models.RecordSet, error) {
	log := logger.FromContext(ctx)

	source = strings.TrimSpace(source)
	if source == "" {
		return models.RecordSet{}, ErrEmptySource
	}

	remote, name := isRemoteSource(source)
	if !spreadsheet.Supported(name) {
		return models.RecordSet{}, fmt.Errorf("%w: %s", spreadsheet.ErrUnsupportedFormat, name)
	}

	var (
		data []byte
		err  error
	)
	if remote {
		data, err = s.download(ctx, source)
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrReadingSource, err)
		}
	}
	if err != nil {
		return models.RecordSet{}, err
	}

	wb, err := spreadsheet.Open(data, name)
	if err != nil {
		return models.RecordSet{}, err
	}
	defer func() { _ = wb.Close() }()

	set, err := spreadsheet.Import(wb)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrSheetNotFound) {
			log.Debug().Err(err).Str("source", source).Msg(app.MsgSheetsMissing)
		}
		return models.RecordSet{}, err
	}

	s.records.Replace(set)
	log.Info().Str("source", source).Int("records", set.Len()).Msg("spreadsheet imported")

	return set, nil
}

func (s *clientImportService) download(ctx context.Context, source string) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownloadingSpreadsheet, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrDownloadingSpreadsheet, resp.Status())
	}
	return resp.Body(), nil
}

// isRemoteSource reports whether source is an http(s) URL and returns the
// name used to pick the workbook reader.
func isRemoteSource(source string) (bool, string) {
	u, err := url.Parse(source)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false, source
	}
	return true, path.Base(u.Path)
}
