// Package view derives the displayed table from the imported records and the
// current [models.ViewState]. Every function here is pure: inputs are never
// modified and the same inputs always give the same output.
package view

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-xray-viewer/models"
)

// Projection is the table derived from a record set and a view state.
type Projection struct {
	// Columns is the column order of the source sheet.
	Columns []string
	// Filtered holds every record matching the search term, sorted.
	Filtered []models.Record
	// Rows holds the records to display: the current page, or all of
	// Filtered when the print view is on.
	Rows []models.Record
	// Total is len(Filtered).
	Total int
	// Pages is the number of pages Filtered spans.
	Pages int
}

// Project applies filter, sort and pagination to set.
func Project(set models.RecordSet, state models.ViewState) Projection {
	filtered := Sort(Filter(set.Records, state.SearchTerm), state.Sort)

	rows := filtered
	if !state.PrintView {
		rows = Paginate(filtered, state.Page, state.RowsPerPage)
	}

	return Projection{
		Columns:  set.Columns,
		Filtered: filtered,
		Rows:     rows,
		Total:    len(filtered),
		Pages:    PageCount(len(filtered), state.RowsPerPage),
	}
}

// Filter keeps the records whose Patient or D9 Data contains term,
// ignoring case. An empty term keeps every record.
func Filter(records []models.Record, term string) []models.Record {
	out := make([]models.Record, 0, len(records))
	if term == "" {
		return append(out, records...)
	}

	needle := strings.ToLower(term)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Get(models.ColumnPatient)), needle) ||
			strings.Contains(strings.ToLower(r.Get(models.ColumnD9Data)), needle) {
			out = append(out, r)
		}
	}

	return out
}

// Sort returns a stably sorted copy of records. Values are compared as
// strings; an empty key returns the records in their original order.
func Sort(records []models.Record, cfg models.SortConfig) []models.Record {
	out := append([]models.Record(nil), records...)
	if cfg.Key == "" {
		return out
	}

	desc := cfg.Direction == models.SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Get(cfg.Key), out[j].Get(cfg.Key)
		if desc {
			return a > b
		}
		return a < b
	})

	return out
}

// ToggleSort returns the sort config after the user selects key: the same
// ascending key flips to descending, anything else sorts key ascending.
func ToggleSort(cfg models.SortConfig, key string) models.SortConfig {
	if cfg.Key == key && cfg.Direction == models.SortAsc {
		return models.SortConfig{Key: key, Direction: models.SortDesc}
	}
	return models.SortConfig{Key: key, Direction: models.SortAsc}
}

// Paginate returns the page-th window of rowsPerPage records. Pages out of
// range yield an empty slice.
func Paginate(records []models.Record, page, rowsPerPage int) []models.Record {
	if rowsPerPage <= 0 || page < 0 {
		return []models.Record{}
	}

	start := page * rowsPerPage
	if start >= len(records) {
		return []models.Record{}
	}
	end := min(start+rowsPerPage, len(records))

	return records[start:end]
}

// PageCount returns how many pages total records span.
func PageCount(total, rowsPerPage int) int {
	if total <= 0 || rowsPerPage <= 0 {
		return 0
	}
	return (total + rowsPerPage - 1) / rowsPerPage
}
