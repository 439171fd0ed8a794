// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintRange_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		r         PrintRange
		wantStart int64
		wantEnd   int64
		wantOK    bool
	}{
		{name: "plain", r: PrintRange{Start: "100", End: "200"}, wantStart: 100, wantEnd: 200, wantOK: true},
		{name: "whitespace and suffix", r: PrintRange{Start: " 7a", End: "9 "}, wantStart: 7, wantEnd: 9, wantOK: true},
		{name: "empty start", r: PrintRange{Start: "", End: "9"}, wantEnd: 9},
		{name: "non numeric end", r: PrintRange{Start: "1", End: "abc"}, wantStart: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := tt.r.Bounds()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
