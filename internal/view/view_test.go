package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-xray-viewer/models"
)

func rec(patient, company, xray string) models.Record {
	return models.Record{
		models.ColumnPatient: patient,
		models.ColumnD9Data:  company,
		models.ColumnXRayNo:  xray,
	}
}

func patients(records []models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Get(models.ColumnPatient)
	}
	return out
}

func TestFilter(t *testing.T) {
	records := []models.Record{
		rec("Ann Smith", "Acme", "1"),
		rec("Bob", "Smithers Ltd", "2"),
		rec("Carl", "Globex", "3"),
		{models.ColumnXRayNo: "4"},
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty term keeps all", term: "", want: []string{"Ann Smith", "Bob", "Carl", ""}},
		{name: "patient or company, case insensitive", term: "SMITH", want: []string{"Ann Smith", "Bob"}},
		{name: "company only", term: "globex", want: []string{"Carl"}},
		{name: "no match", term: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.term)
			assert.Equal(t, tt.want, patients(got))

			again := Filter(got, tt.term)
			assert.Equal(t, patients(got), patients(again), "filter is idempotent")
		})
	}
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	records := []models.Record{rec("a", "", "1"), rec("b", "", "2")}
	got := Filter(records, "")
	got[0] = rec("changed", "", "9")

	assert.Equal(t, "a", records[0].Get(models.ColumnPatient))
}

func TestSort(t *testing.T) {
	records := []models.Record{
		rec("b", "x", "10"),
		rec("a", "y", "9"),
		rec("b", "z", "2"),
	}

	t.Run("no key keeps order", func(t *testing.T) {
		assert.Equal(t, []string{"b", "a", "b"}, patients(Sort(records, models.SortConfig{})))
	})

	t.Run("ascending is stable", func(t *testing.T) {
		got := Sort(records, models.SortConfig{Key: models.ColumnPatient, Direction: models.SortAsc})
		require.Equal(t, []string{"a", "b", "b"}, patients(got))
		assert.Equal(t, "x", got[1].Get(models.ColumnD9Data))
		assert.Equal(t, "z", got[2].Get(models.ColumnD9Data))
	})

	t.Run("descending keeps tie order", func(t *testing.T) {
		got := Sort(records, models.SortConfig{Key: models.ColumnPatient, Direction: models.SortDesc})
		require.Equal(t, []string{"b", "b", "a"}, patients(got))
		assert.Equal(t, "x", got[0].Get(models.ColumnD9Data))
		assert.Equal(t, "z", got[1].Get(models.ColumnD9Data))
	})

	t.Run("values compare as strings", func(t *testing.T) {
		got := Sort(records, models.SortConfig{Key: models.ColumnXRayNo, Direction: models.SortAsc})
		xrays := []string{got[0].Get(models.ColumnXRayNo), got[1].Get(models.ColumnXRayNo), got[2].Get(models.ColumnXRayNo)}
		assert.Equal(t, []string{"10", "2", "9"}, xrays)
	})

	t.Run("input untouched", func(t *testing.T) {
		_ = Sort(records, models.SortConfig{Key: models.ColumnPatient, Direction: models.SortAsc})
		assert.Equal(t, []string{"b", "a", "b"}, patients(records))
	})
}

func TestToggleSort(t *testing.T) {
	asc := models.SortConfig{Key: "Age", Direction: models.SortAsc}
	desc := models.SortConfig{Key: "Age", Direction: models.SortDesc}

	assert.Equal(t, asc, ToggleSort(models.SortConfig{}, "Age"))
	assert.Equal(t, desc, ToggleSort(asc, "Age"))
	assert.Equal(t, asc, ToggleSort(desc, "Age"))
	assert.Equal(t, models.SortConfig{Key: "Patient", Direction: models.SortAsc}, ToggleSort(desc, "Patient"))
}

func TestPaginate(t *testing.T) {
	records := make([]models.Record, 23)
	for i := range records {
		records[i] = rec("", "", "")
	}

	assert.Len(t, Paginate(records, 0, 10), 10)
	assert.Len(t, Paginate(records, 2, 10), 3)
	assert.Empty(t, Paginate(records, 3, 10))
	assert.Empty(t, Paginate(records, -1, 10))
	assert.Empty(t, Paginate(records, 0, 0))
	assert.Empty(t, Paginate(nil, 0, 10))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 3, PageCount(23, 10))
	assert.Equal(t, 0, PageCount(5, 0))
}

func TestProject(t *testing.T) {
	set := models.RecordSet{
		Columns: []string{models.ColumnXRayNo, models.ColumnPatient},
	}
	for _, p := range []string{"e", "d", "c", "b", "a"} {
		set.Records = append(set.Records, rec(p, "Acme", p))
	}

	state := models.ViewState{
		Sort:        models.SortConfig{Key: models.ColumnPatient, Direction: models.SortAsc},
		Page:        1,
		RowsPerPage: 2,
	}

	p := Project(set, state)
	assert.Equal(t, set.Columns, p.Columns)
	assert.Equal(t, 5, p.Total)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, patients(p.Filtered))
	assert.Equal(t, []string{"c", "d"}, patients(p.Rows))

	state.PrintView = true
	p = Project(set, state)
	assert.Equal(t, patients(p.Filtered), patients(p.Rows), "print view shows every filtered row")

	state = models.ViewState{SearchTerm: "zzz", RowsPerPage: 10}
	p = Project(set, state)
	assert.Zero(t, p.Total)
	assert.Zero(t, p.Pages)
	assert.Empty(t, p.Rows)

	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, patients(set.Records), "record set untouched")
}
