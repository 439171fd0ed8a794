// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/MKhiriev/go-xray-viewer/internal/utils"

// PrintRange is the X-Ray No. interval typed into the print form.
// Bounds are kept as entered and parsed when the range is applied.
type PrintRange struct {
	Start string
	End   string
}

// Bounds parses both ends of the range. ok is false when either end has no
// leading integer.
func (r PrintRange) Bounds() (start, end int64, ok bool) {
	start, okStart := utils.ParseLeadingInt(r.Start)
	end, okEnd := utils.ParseLeadingInt(r.End)
	return start, end, okStart && okEnd
}

// PrintDocument is a rendered print page waiting to be served to the browser.
type PrintDocument struct {
	ID   string
	HTML []byte
}
