// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package spreadsheet

import (
	"fmt"

	"github.com/MKhiriev/go-xray-viewer/models"
)

// Layout of the clinic workbook.
const (
	SheetMasterlist = "MASTERLIST"
	SheetLogIn      = "LOG IN"

	// HeaderRowIndex is the zero-based MASTERLIST row holding column names.
	// Data starts on the row after it.
	HeaderRowIndex = 3

	CellD7 = "D7"
	CellD9 = "D9"
)

// Import extracts patient records from a clinic workbook.
//
// Both the MASTERLIST and LOG IN sheets must exist, otherwise
// [ErrSheetNotFound] is returned. Every MASTERLIST row below the header row
// becomes one record; header cells pair positionally with row cells and
// missing cells read as "". The LOG IN D7 and D9 values are copied into every
// record under [models.ColumnD7Data] and [models.ColumnD9Data].
func Import(wb Workbook) (models.RecordSet, error) {
	masterlist, ok := wb.Sheet(SheetMasterlist)
	if !ok {
		return models.RecordSet{}, fmt.Errorf("%w: %s", ErrSheetNotFound, SheetMasterlist)
	}
	logIn, ok := wb.Sheet(SheetLogIn)
	if !ok {
		return models.RecordSet{}, fmt.Errorf("%w: %s", ErrSheetNotFound, SheetLogIn)
	}

	rows, err := masterlist.Rows()
	if err != nil {
		return models.RecordSet{}, fmt.Errorf("%w %s: %w", ErrReadingSheet, SheetMasterlist, err)
	}

	d7, err := logIn.Cell(CellD7)
	if err != nil {
		return models.RecordSet{}, fmt.Errorf("%w %s!%s: %w", ErrReadingSheet, SheetLogIn, CellD7, err)
	}
	d9, err := logIn.Cell(CellD9)
	if err != nil {
		return models.RecordSet{}, fmt.Errorf("%w %s!%s: %w", ErrReadingSheet, SheetLogIn, CellD9, err)
	}

	var header []string
	if len(rows) > HeaderRowIndex {
		header = rows[HeaderRowIndex]
	}

	set := models.RecordSet{Columns: headerColumns(header)}
	if len(rows) > HeaderRowIndex+1 {
		data := rows[HeaderRowIndex+1:]
		set.Records = make([]models.Record, 0, len(data))
		for _, row := range data {
			set.Records = append(set.Records, buildRecord(header, row, d7, d9))
		}
	}

	return set, nil
}

// headerColumns returns the distinct non-empty header names in first-seen
// order followed by the two LOG IN columns.
func headerColumns(header []string) []string {
	seen := make(map[string]struct{}, len(header)+2)
	columns := make([]string, 0, len(header)+2)

	for _, name := range append(append([]string(nil), header...), models.ColumnD7Data, models.ColumnD9Data) {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		columns = append(columns, name)
	}

	return columns
}

func buildRecord(header, row []string, d7, d9 string) models.Record {
	record := make(models.Record, len(header)+2)
	for i, name := range header {
		if name == "" {
			continue
		}
		value := ""
		if i < len(row) {
			value = row[i]
		}
		// a repeated header name keeps the right-most column
		record[name] = value
	}
	record[models.ColumnD7Data] = d7
	record[models.ColumnD9Data] = d9

	return record
}
