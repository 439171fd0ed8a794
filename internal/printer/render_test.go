package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-xray-viewer/models"
)

func TestRender(t *testing.T) {
	records := []models.Record{
		{
			models.ColumnXRayNo:  "101",
			models.ColumnPatient: "Ann",
			models.ColumnAge:     "62",
			models.ColumnGender:  "Female",
			models.ColumnD7Data:  "2024-01-05",
			models.ColumnD9Data:  "Acme",
		},
		{
			models.ColumnXRayNo:  "102",
			models.ColumnPatient: "<script>alert(1)</script>",
		},
	}

	out, err := Render(records)
	require.NoError(t, err)
	page := string(out)

	assert.Contains(t, page, "<title>Print</title>")
	assert.Contains(t, page, "window.print()")
	assert.Contains(t, page, ".box { width: 80%; max-width: 800px;")
	assert.Equal(t, 2, strings.Count(page, `<div class="box">`))

	assert.Contains(t, page, "<h2>X-Ray No.: 101</h2>")
	assert.Contains(t, page, "<p><strong>Patient:</strong> Ann</p>")
	assert.Contains(t, page, "<p><strong>Age:</strong> 62</p>")
	assert.Contains(t, page, "<p><strong>Gender:</strong> Female</p>")
	assert.Contains(t, page, "<p><strong>DATE:</strong> 2024-01-05</p>")
	assert.Contains(t, page, "<p><strong>COMPANY:</strong> Acme</p>")

	assert.Less(t, strings.Index(page, "X-Ray No.: 101"), strings.Index(page, "X-Ray No.: 102"))

	assert.NotContains(t, page, "<script>alert(1)</script>")
	assert.Contains(t, page, "&lt;script&gt;")
}

func TestRender_Empty(t *testing.T) {
	out, err := Render(nil)
	require.NoError(t, err)
	assert.NotContains(t, string(out), `class="box"`)
}
