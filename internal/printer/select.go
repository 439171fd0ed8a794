package printer

import (
	"github.com/MKhiriev/go-xray-viewer/internal/utils"
	"github.com/MKhiriev/go-xray-viewer/models"
)

// SelectRange returns the records whose X-Ray No. lies in r, inclusive, in
// the order given. Records without a numeric X-Ray No. are skipped.
func SelectRange(records []models.Record, r models.PrintRange) ([]models.Record, error) {
	start, end, ok := r.Bounds()
	if !ok || start > end {
		return nil, ErrInvalidRange
	}

	selected := make([]models.Record, 0)
	for _, rec := range records {
		n, ok := utils.ParseLeadingInt(rec.Get(models.ColumnXRayNo))
		if !ok {
			continue
		}
		if n >= start && n <= end {
			selected = append(selected, rec)
		}
	}

	if len(selected) == 0 {
		return nil, ErrNoRecordsInRange
	}

	return selected, nil
}
