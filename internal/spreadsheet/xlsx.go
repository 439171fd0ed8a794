// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package spreadsheet

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

type xlsxWorkbook struct {
	file *excelize.File
}

func openXLSX(data []byte) (Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{file: f}, nil
}

func (w *xlsxWorkbook) Sheet(name string) (Sheet, bool) {
	idx, err := w.file.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil, false
	}
	return &xlsxSheet{file: w.file, name: name}, true
}

func (w *xlsxWorkbook) Close() error {
	return w.file.Close()
}

type xlsxSheet struct {
	file *excelize.File
	name string
}

func (s *xlsxSheet) Rows() ([][]string, error) {
	return s.file.GetRows(s.name)
}

func (s *xlsxSheet) Cell(ref string) (string, error) {
	return s.file.GetCellValue(s.name, ref)
}
