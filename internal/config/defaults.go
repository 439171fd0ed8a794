// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultAuthMode      = "hashed"
	defaultIdleTimeout   = 5 * time.Minute
	defaultLogFile       = "viewer.log"
	defaultRowsPerPage   = 10
	defaultDSN           = "viewer.db"
	defaultPrintAddress  = "127.0.0.1:0"
	defaultDocumentLimit = 32
	defaultExportDir     = "."
	defaultImportDir     = "."
	defaultImportTimeout = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AuthMode:    defaultAuthMode,
			IdleTimeout: defaultIdleTimeout,
			LogFile:     defaultLogFile,
		},
		View: View{RowsPerPage: defaultRowsPerPage},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Print: Print{
			Address:       defaultPrintAddress,
			DocumentLimit: defaultDocumentLimit,
		},
		Export: Export{Dir: defaultExportDir},
		Import: Import{
			Dir:            defaultImportDir,
			RequestTimeout: defaultImportTimeout,
		},
	}
}
