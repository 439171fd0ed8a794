// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MKhiriev/go-xray-viewer/models"
)

func TestWrite(t *testing.T) {
	columns := []string{"X-Ray No.", "Patient", models.ColumnD7Data, models.ColumnD9Data}
	records := []models.Record{
		{"X-Ray No.": "2", "Patient": "Bob", models.ColumnD9Data: "Acme"},
		{"X-Ray No.": "1", "Patient": "Ann", "Extra": "not exported"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, columns, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{ExportSheetName}, f.GetSheetList())

	rows, err := f.GetRows(ExportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columns, rows[0])
	assert.Equal(t, []string{"2", "Bob", "", "Acme"}, rows[1])
	assert.Equal(t, []string{"1", "Ann"}, rows[2], "trailing empty cells are not stored")
}

func TestWrite_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []string{"Patient"}, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(ExportSheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Patient"}}, rows)
}
