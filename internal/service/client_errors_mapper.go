// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-xray-viewer/internal/app"
	"github.com/MKhiriev/go-xray-viewer/internal/printer"
	"github.com/MKhiriev/go-xray-viewer/internal/spreadsheet"
	"github.com/MKhiriev/go-xray-viewer/internal/store"
)

// UserMessage translates a service error into the text shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrEmptyFields):
		return app.MsgAllFieldsRequired
	case errors.Is(err, ErrUsernameTaken):
		return app.MsgUsernameTaken
	case errors.Is(err, ErrInvalidCredentials):
		return app.MsgInvalidCredentials

	case errors.Is(err, printer.ErrInvalidRange):
		return app.MsgInvalidRange
	case errors.Is(err, printer.ErrNoRecordsInRange):
		return app.MsgNoRecordsInRange

	case errors.Is(err, ErrNothingToExport):
		return app.MsgNothingToExport
	case errors.Is(err, spreadsheet.ErrUnsupportedFormat):
		return app.MsgUnsupportedFormat

	case errors.Is(err, store.ErrExecutingQuery),
		errors.Is(err, store.ErrExecutingStatement),
		errors.Is(err, store.ErrBuildingSQLQuery):
		return app.MsgUnexpectedError
	}

	return err.Error()
}
