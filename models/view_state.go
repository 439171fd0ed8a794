// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SortDirection is the ordering applied to the sort column.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortConfig names the column to sort by. An empty Key disables sorting.
type SortConfig struct {
	Key       string
	Direction SortDirection
}

// DefaultRowsPerPage is the page size used until the user picks another one.
const DefaultRowsPerPage = 10

// RowsPerPageOptions lists the page sizes the viewer cycles through.
var RowsPerPageOptions = []int{10, 25, 50, 100}

// ViewState is the transient table configuration driven by user input.
type ViewState struct {
	SearchTerm  string
	Sort        SortConfig
	Page        int
	RowsPerPage int
	PrintView   bool
}

// NewViewState returns the initial view state for the given page size.
// Non-positive sizes fall back to [DefaultRowsPerPage].
func NewViewState(rowsPerPage int) ViewState {
	if rowsPerPage <= 0 {
		rowsPerPage = DefaultRowsPerPage
	}
	return ViewState{RowsPerPage: rowsPerPage}
}
