// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"

	"github.com/MKhiriev/go-xray-viewer/models"
)

// validate checks the merged [StructuredConfig]. Field-level rules live on
// [ClientConfig]; here only values that cannot be represented in the client
// view are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.View.RowsPerPage < 0 || cfg.Print.DocumentLimit < 0 {
		return ErrInvalidViewConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if !cfg.App.AuthMode.Valid() || cfg.App.IdleTimeout <= 0 {
		return ErrInvalidAppConfigs
	}

	if !slices.Contains(models.RowsPerPageOptions, cfg.View.RowsPerPage) {
		return ErrInvalidViewConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.PrintDocumentLimit <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Print.Address == "" {
		return ErrInvalidPrintConfigs
	}

	if cfg.Export.Dir == "" {
		return ErrInvalidExportConfigs
	}

	if cfg.Import.RequestTimeout <= 0 {
		return ErrInvalidImportConfigs
	}

	return nil
}
