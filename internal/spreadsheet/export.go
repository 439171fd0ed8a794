// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/MKhiriev/go-xray-viewer/models"
)

// ExportSheetName is the name of the single sheet in exported workbooks.
const ExportSheetName = "Exported"

// Write encodes records as an .xlsx workbook with a single [ExportSheetName]
// sheet. The first row holds columns; each record follows in order with one
// cell per column.
func Write(w io.Writer, columns []string, records []models.Record) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), ExportSheetName); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
	}

	sw, err := f.NewStreamWriter(ExportSheetName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err = sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
		}

		values := make([]interface{}, len(columns))
		for j, c := range columns {
			values[j] = r.Get(c)
		}
		if err = sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
		}
	}

	if err = sw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
	}

	return nil
}
