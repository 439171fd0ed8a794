// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package spreadsheet

import "errors"

var (
	ErrSheetNotFound     = errors.New("required sheet not found")
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrOpeningWorkbook   = errors.New("error opening workbook")
	ErrReadingSheet      = errors.New("error reading sheet")
	ErrWritingWorkbook   = errors.New("error writing workbook")
)
