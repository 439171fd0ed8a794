// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-xray-viewer/models"
)

// ClientApp holds authentication and session settings.
type ClientApp struct {
	// AuthMode selects hashed (persisted) or plaintext (transient) accounts.
	AuthMode models.AuthMode
	// IdleTimeout is the inactivity period before the session expires.
	IdleTimeout time.Duration
	// LogFile is the client log file path.
	LogFile string
}

// ClientView holds table presentation settings.
type ClientView struct {
	// RowsPerPage is the initial page size.
	RowsPerPage int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// PrintDocumentLimit caps the number of rendered print documents kept
	// in memory.
	PrintDocumentLimit int
}

// ClientPrint holds print server settings.
type ClientPrint struct {
	// Address is the loopback listen address of the print server.
	Address string
	// Opener overrides the browser command. Empty means platform default.
	Opener string
}

// ClientExport holds export settings.
type ClientExport struct {
	// Dir is the export target directory.
	Dir string
}

// ClientImport holds import settings.
type ClientImport struct {
	// Dir is the file picker start directory.
	Dir string
	// RequestTimeout bounds remote spreadsheet downloads.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	View    ClientView
	Storage ClientStorage
	Print   ClientPrint
	Export  ClientExport
	Import  ClientImport
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			AuthMode:    models.AuthMode(cfg.App.AuthMode),
			IdleTimeout: cfg.App.IdleTimeout,
			LogFile:     cfg.App.LogFile,
		},
		View: ClientView{RowsPerPage: cfg.View.RowsPerPage},
		Storage: ClientStorage{
			DB:                 ClientDB{DSN: cfg.Storage.DB.DSN},
			PrintDocumentLimit: cfg.Print.DocumentLimit,
		},
		Print: ClientPrint{
			Address: cfg.Print.Address,
			Opener:  cfg.Print.Opener,
		},
		Export: ClientExport{Dir: cfg.Export.Dir},
		Import: ClientImport{
			Dir:            cfg.Import.Dir,
			RequestTimeout: cfg.Import.RequestTimeout,
		},
	}
}
