// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an unknown auth mode or a non-positive
	// idle timeout.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidViewConfigs indicates an unsupported rows-per-page value.
	ErrInvalidViewConfigs = errors.New("invalid view configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or a non-positive
	// print document limit.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidPrintConfigs indicates a missing print server address.
	ErrInvalidPrintConfigs = errors.New("invalid print configuration")
	// ErrInvalidExportConfigs indicates a missing export directory.
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
	// ErrInvalidImportConfigs indicates a non-positive remote import timeout.
	ErrInvalidImportConfigs = errors.New("invalid import configuration")
)
