package printer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/MKhiriev/go-xray-viewer/models"
)

const printTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Print</title>
<style>
  body { font-family: Arial, sans-serif; padding: 20px; }
  .box { width: 80%; max-width: 800px; border: 1px solid #000; padding: 20px; margin: 20px auto; font-size: 18px; }
  .box h2 { margin: 0; font-size: 22px; }
  .box p { margin: 5px 0; }
</style>
</head>
<body onload="window.print()">
{{- range .}}
<div class="box">
  <h2>X-Ray No.: {{.XRayNo}}</h2>
  <p><strong>Patient:</strong> {{.Patient}}</p>
  <p><strong>Age:</strong> {{.Age}}</p>
  <p><strong>Gender:</strong> {{.Gender}}</p>
  <p><strong>DATE:</strong> {{.Date}}</p>
  <p><strong>COMPANY:</strong> {{.Company}}</p>
</div>
{{- end}}
</body>
</html>
`

var pageTemplate = template.Must(template.New("print").Parse(printTemplate))

// card is the printable view of a single record.
type card struct {
	XRayNo  string
	Patient string
	Age     string
	Gender  string
	Date    string
	Company string
}

// Render produces the print page for records, one card per record in order.
// Cell values are HTML-escaped.
func Render(records []models.Record) ([]byte, error) {
	cards := make([]card, len(records))
	for i, r := range records {
		cards[i] = card{
			XRayNo:  r.Get(models.ColumnXRayNo),
			Patient: r.Get(models.ColumnPatient),
			Age:     r.Get(models.ColumnAge),
			Gender:  r.Get(models.ColumnGender),
			Date:    r.Get(models.ColumnD7Data),
			Company: r.Get(models.ColumnD9Data),
		}
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, cards); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderingDocument, err)
	}

	return buf.Bytes(), nil
}
