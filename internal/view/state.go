package view

import "github.com/MKhiriev/go-xray-viewer/models"

// WithSearchTerm sets the search term and returns to the first page.
func WithSearchTerm(state models.ViewState, term string) models.ViewState {
	state.SearchTerm = term
	state.Page = 0
	return state
}

// WithSort applies [ToggleSort] for key.
func WithSort(state models.ViewState, key string) models.ViewState {
	state.Sort = ToggleSort(state.Sort, key)
	return state
}

// WithPage moves to page, clamped to the pages available for total records.
func WithPage(state models.ViewState, page, total int) models.ViewState {
	last := PageCount(total, state.RowsPerPage) - 1
	state.Page = max(0, min(page, last))
	return state
}

// WithRowsPerPage changes the page size and returns to the first page.
func WithRowsPerPage(state models.ViewState, n int) models.ViewState {
	if n <= 0 {
		n = models.DefaultRowsPerPage
	}
	state.RowsPerPage = n
	state.Page = 0
	return state
}

// NextRowsPerPage returns the page size following current in
// [models.RowsPerPageOptions], wrapping around.
func NextRowsPerPage(current int) int {
	for i, n := range models.RowsPerPageOptions {
		if n == current {
			return models.RowsPerPageOptions[(i+1)%len(models.RowsPerPageOptions)]
		}
	}
	return models.RowsPerPageOptions[0]
}

// TogglePrintView flips between the paged table and the all-rows print view.
func TogglePrintView(state models.ViewState) models.ViewState {
	state.PrintView = !state.PrintView
	return state
}
