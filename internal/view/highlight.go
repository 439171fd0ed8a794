package view

import (
	"strings"

	"github.com/MKhiriev/go-xray-viewer/internal/utils"
	"github.com/MKhiriev/go-xray-viewer/models"
)

// HighlightAgeThreshold is the age above which a row is highlighted.
const HighlightAgeThreshold = 50

// Badge tones.
const (
	TonePrimary   = "primary"
	ToneSecondary = "secondary"
)

// Badge is the gender chip shown next to a record.
type Badge struct {
	Label string
	Tone  string
}

// IsHighlighted reports whether the record's Age starts with an integer
// greater than [HighlightAgeThreshold].
func IsHighlighted(r models.Record) bool {
	age, ok := utils.ParseLeadingInt(r.Get(models.ColumnAge))
	return ok && age > HighlightAgeThreshold
}

// GenderBadge returns the chip for the record's Gender. ok is false when the
// gender is empty.
func GenderBadge(r models.Record) (Badge, bool) {
	gender := r.Get(models.ColumnGender)
	if gender == "" {
		return Badge{}, false
	}

	tone := TonePrimary
	if strings.ToLower(gender) == "female" {
		tone = ToneSecondary
	}
	return Badge{Label: gender, Tone: tone}, true
}
