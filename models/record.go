// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Column names the application relies on. Any other spreadsheet column is
// carried through without interpretation.
const (
	ColumnPatient = "Patient"
	ColumnAge     = "Age"
	ColumnGender  = "Gender"
	ColumnXRayNo  = "X-Ray No."
	ColumnD7Data  = "D7 Data"
	ColumnD9Data  = "D9 Data"
)

// Record is a single imported spreadsheet row keyed by column name.
type Record map[string]string

// Get returns the value stored under key, or "" when the column is absent.
func (r Record) Get(key string) string {
	if r == nil {
		return ""
	}
	return r[key]
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// RecordSet is the result of one spreadsheet import.
//
// Columns preserves the header order of the source sheet followed by the
// synthetic [ColumnD7Data] and [ColumnD9Data] columns; Records hold the data
// rows in sheet order.
type RecordSet struct {
	Columns []string
	Records []Record
}

// Len returns the number of records in the set.
func (s RecordSet) Len() int {
	return len(s.Records)
}

// Clone returns a copy of the set that shares no slices or maps with s.
func (s RecordSet) Clone() RecordSet {
	out := RecordSet{
		Columns: append([]string(nil), s.Columns...),
		Records: make([]Record, len(s.Records)),
	}
	for i, r := range s.Records {
		out.Records[i] = r.Clone()
	}
	return out
}
