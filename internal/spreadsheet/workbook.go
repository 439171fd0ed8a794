// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package spreadsheet

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Workbook is an opened spreadsheet file.
type Workbook interface {
	// Sheet looks a worksheet up by its exact name.
	Sheet(name string) (Sheet, bool)
	Close() error
}

// Sheet is a single worksheet.
type Sheet interface {
	// Rows returns the cell text of every row, top to bottom. Rows may have
	// different lengths; trailing empty cells are not guaranteed.
	Rows() ([][]string, error)
	// Cell returns the text of the cell at an A1-style reference, or "" when
	// the cell is empty.
	Cell(ref string) (string, error)
}

// Supported file extensions.
const (
	ExtXLSX = ".xlsx"
	ExtXLS  = ".xls"
)

// Supported reports whether filename carries an extension [Open] can read.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ExtXLSX, ExtXLS:
		return true
	}
	return false
}

// Open decodes data as a workbook. The reader is chosen by the extension of
// filename: ".xls" files go through the BIFF reader, everything else is
// treated as Office Open XML.
func Open(data []byte, filename string) (Workbook, error) {
	var (
		wb  Workbook
		err error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ExtXLS:
		wb, err = openXLS(data)
	default:
		wb, err = openXLSX(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpeningWorkbook, filename, err)
	}

	return wb, nil
}
