// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package spreadsheet reads clinic workbook exports into [models.RecordSet]
// values and writes filtered record views back out as .xlsx files.
//
// Two container formats are understood: Office Open XML (.xlsx) through
// excelize and legacy BIFF8 (.xls) through extrame/xls. Both are exposed
// behind the small [Workbook] and [Sheet] interfaces so the import rules in
// [Import] do not depend on the file format.
package spreadsheet
