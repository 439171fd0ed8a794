// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/printer"
	"github.com/MKhiriev/go-xray-viewer/models"
)

type clientPrintService struct {
	surface printer.Surface
	logger  *logger.Logger
}

func NewClientPrintService(surface printer.Surface, logger *logger.Logger) ClientPrintService {
	return &clientPrintService{surface: surface, logger: logger}
}

func (s *clientPrintService) Print(ctx context.Context, filtered []models.Record, r models.PrintRange) (string, error) {
	log := logger.FromContext(ctx)

	selected, err := printer.SelectRange(filtered, r)
	if err != nil {
		log.Debug().Err(err).Str("start", r.Start).Str("end", r.End).Msg("print range rejected")
		return "", err
	}

	doc, err := printer.Render(selected)
	if err != nil {
		return "", err
	}

	location, err := s.surface.Open(ctx, doc)
	if err != nil {
		return location, err
	}

	log.Info().Int("records", len(selected)).Str("location", location).Msg("print document opened")
	return location, nil
}
