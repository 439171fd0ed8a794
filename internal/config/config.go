// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the viewer.
// It aggregates all sub-configurations and is populated by merging built-in
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds authentication and session settings.
	App App `envPrefix:"APP_"`

	// View holds table presentation settings.
	View View `envPrefix:"VIEW_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Print holds the loopback print server settings.
	Print Print `envPrefix:"PRINT_"`

	// Export holds spreadsheet export settings.
	Export Export `envPrefix:"EXPORT_"`

	// Import holds spreadsheet import settings.
	Import Import `envPrefix:"IMPORT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// AuthMode selects the account store: "hashed" (persisted SHA-256
	// digests) or the deprecated "plaintext" (in-memory only).
	// Env: APP_AUTH_MODE
	AuthMode string `env:"AUTH_MODE"`

	// IdleTimeout is the inactivity period after which the session is
	// closed (e.g. "5m").
	// Env: APP_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`

	// LogFile is the file the client logger appends to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// View holds table presentation settings.
type View struct {
	// RowsPerPage is the initial page size. Must be one of the selectable
	// page sizes (10, 25, 50, 100).
	// Env: VIEW_ROWS_PER_PAGE
	RowsPerPage int `env:"ROWS_PER_PAGE"`
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Print holds settings for the loopback server that hands print documents
// to the system browser.
type Print struct {
	// Address is the "host:port" the print server listens on. Port 0 picks
	// a free port.
	// Env: PRINT_ADDRESS
	Address string `env:"ADDRESS"`

	// DocumentLimit is the number of rendered documents kept available for
	// the browser. Older documents are evicted first.
	// Env: PRINT_DOCUMENT_LIMIT
	DocumentLimit int `env:"DOCUMENT_LIMIT"`

	// Opener overrides the command used to open the print URL
	// (e.g. "firefox"). Empty means the platform default.
	// Env: PRINT_OPENER
	Opener string `env:"OPENER"`
}

// Export holds spreadsheet export settings.
type Export struct {
	// Dir is the directory filtered_data.xlsx is written to.
	// Env: EXPORT_DIR
	Dir string `env:"DIR"`
}

// Import holds spreadsheet import settings.
type Import struct {
	// Dir is the directory the file picker starts in.
	// Env: IMPORT_DIR
	Dir string `env:"DIR"`

	// RequestTimeout bounds downloads of remote spreadsheets.
	// Env: IMPORT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources using the process arguments for flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
