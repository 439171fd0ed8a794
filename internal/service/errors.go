// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmptyFields        = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoActiveSession    = errors.New("no active session")

	ErrReadingAccounts = errors.New("error reading accounts")
	ErrWritingAccounts = errors.New("error writing accounts")
	ErrWritingSession  = errors.New("error writing session")

	ErrEmptySource            = errors.New("no spreadsheet source given")
	ErrReadingSource          = errors.New("error reading spreadsheet source")
	ErrDownloadingSpreadsheet = errors.New("error downloading spreadsheet")

	ErrNothingToExport = errors.New("nothing to export")
	ErrWritingExport   = errors.New("error writing export file")
)
