// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-xray-viewer/internal/view"
	"github.com/MKhiriev/go-xray-viewer/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService is the local login/registration gate.
type ClientAuthService interface {
	// Mode reports the account storage mode the service was built for.
	Mode() models.AuthMode

	// Register creates a new account from the submitted username, password
	// and role. It returns ErrEmptyFields when the username or password is
	// empty and ErrUsernameTaken when the username exists; storage is left
	// untouched in both cases. Registration never logs the user in.
	Register(ctx context.Context, account models.Account) error

	// Login checks creds against the registered accounts and starts a
	// session. It returns ErrEmptyFields or ErrInvalidCredentials on failure.
	Login(ctx context.Context, creds models.Credentials) (models.Account, error)

	// Logout ends the current session. Logging out without a session is not
	// an error.
	Logout(ctx context.Context) error

	// RestoreSession resumes the session persisted by a previous run. It
	// returns ErrNoActiveSession when there is nothing to resume.
	RestoreSession(ctx context.Context) (models.Account, error)

	// Current returns the logged-in account, if any.
	Current() (models.Account, bool)
}

// ClientImportService loads clinic spreadsheets into the record store.
type ClientImportService interface {
	// Import reads the workbook at source, a local path or an http(s) URL,
	// and replaces the stored records with its contents. A workbook without
	// the expected sheets returns an error wrapping
	// spreadsheet.ErrSheetNotFound and leaves the records untouched.
	Import(ctx context.Context, source string) (models.RecordSet, error)
}

// ClientViewService projects the stored records through a view state.
type ClientViewService interface {
	Project(state models.ViewState) view.Projection
}

// ClientPrintService prints a range of the filtered records.
type ClientPrintService interface {
	// Print selects the records in r from filtered, renders them and opens
	// the result. It returns where the document can be reached.
	Print(ctx context.Context, filtered []models.Record, r models.PrintRange) (string, error)
}

// ClientExportService writes the filtered view to a spreadsheet file.
type ClientExportService interface {
	// Export writes every filtered record of p and returns the file path.
	Export(ctx context.Context, p view.Projection) (string, error)
}
