// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

const xlsCharset = "utf-8"

type xlsWorkbook struct {
	book *xls.WorkBook
}

func openXLS(data []byte) (Workbook, error) {
	book, err := xls.OpenReader(bytes.NewReader(data), xlsCharset)
	if err != nil {
		return nil, err
	}
	return &xlsWorkbook{book: book}, nil
}

func (w *xlsWorkbook) Sheet(name string) (Sheet, bool) {
	for i := 0; i < w.book.NumSheets(); i++ {
		ws := w.book.GetSheet(i)
		if ws != nil && ws.Name == name {
			return &xlsSheet{sheet: ws}, true
		}
	}
	return nil, false
}

// Close is a no-op; the BIFF reader keeps no open handles.
func (w *xlsWorkbook) Close() error {
	return nil
}

type xlsSheet struct {
	sheet *xls.WorkSheet
}

func (s *xlsSheet) Rows() ([][]string, error) {
	rows := make([][]string, 0, int(s.sheet.MaxRow)+1)
	for i := 0; i <= int(s.sheet.MaxRow); i++ {
		row := s.sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}

		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}

	return trimTrailingEmptyRows(rows), nil
}

func (s *xlsSheet) Cell(ref string) (string, error) {
	col, rowNum, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return "", fmt.Errorf("invalid cell reference %q: %w", ref, err)
	}

	row := s.sheet.Row(rowNum - 1)
	if row == nil {
		return "", nil
	}
	if col-1 < row.FirstCol() || col-1 >= row.LastCol() {
		return "", nil
	}
	return row.Col(col - 1), nil
}

func trimTrailingEmptyRows(rows [][]string) [][]string {
	for len(rows) > 0 && isEmptyRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
