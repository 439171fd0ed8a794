// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-xray-viewer/internal/config"
	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/printer"
	"github.com/MKhiriev/go-xray-viewer/internal/store"
	"github.com/MKhiriev/go-xray-viewer/internal/utils"
	"github.com/MKhiriev/go-xray-viewer/internal/validators"
	"github.com/MKhiriev/go-xray-viewer/models"
)

type ClientServices struct {
	AuthService   ClientAuthService
	ImportService ClientImportService
	ViewService   ClientViewService
	PrintService  ClientPrintService
	ExportService ClientExportService
}

func NewClientServices(storages *store.ClientStorages, surface printer.Surface, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	accountValidator := validators.NewAccountValidator()

	var authSvc ClientAuthService
	switch cfg.App.AuthMode {
	case models.AuthModePlaintext:
		logger.Warn().Msg("plaintext auth mode is deprecated: accounts are kept in memory without hashing")
		authSvc = NewPlaintextAuthService(accountValidator, logger)
	default:
		authSvc = NewClientAuthService(storages.KeyValue, accountValidator, logger)
	}

	return &ClientServices{
		AuthService:   newSessionScopedAuthService(authSvc, storages.Records),
		ImportService: NewClientImportService(storages.Records, utils.NewHTTPClient(cfg.Import.RequestTimeout), logger),
		ViewService:   NewClientViewService(storages.Records),
		PrintService:  NewClientPrintService(surface, logger),
		ExportService: NewClientExportService(cfg.Export.Dir, logger),
	}
}
