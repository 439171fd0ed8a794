// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// services and the terminal UI.
//
// Keeping the wording in one place keeps toasts, form errors and log entries
// consistent.
package app

const (
	// MsgAllFieldsRequired is shown when a login or registration form is
	// submitted with an empty username or password.
	MsgAllFieldsRequired = "All fields are required"

	// MsgUsernameTaken is shown when registering a username that already
	// exists.
	MsgUsernameTaken = "Username already taken"

	// MsgRegistered is shown on the login form after a successful
	// registration.
	MsgRegistered = "Registered successfully. Please login."

	// MsgInvalidCredentials is shown when no account matches the submitted
	// username and password.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgWelcome prefixes the username in the toast shown after login.
	MsgWelcome = "Welcome, "

	// MsgLoggedOut is shown after an explicit logout.
	MsgLoggedOut = "You have been logged out."

	// MsgSessionExpired is shown after the idle timeout ends a session.
	MsgSessionExpired = "Session expired due to inactivity."

	// MsgInvalidRange is shown when a print range bound is not a number or
	// the start is greater than the end.
	MsgInvalidRange = "Invalid X-Ray No. range"

	// MsgNoRecordsInRange is shown when no filtered record falls inside the
	// print range.
	MsgNoRecordsInRange = "No records found in the given range"

	// MsgNothingToExport is shown when exporting an empty view.
	MsgNothingToExport = "Nothing to export"

	// MsgUnsupportedFormat is shown when the import source is not an .xlsx
	// or .xls file.
	MsgUnsupportedFormat = "Only .xlsx and .xls files are supported"

	// MsgSheetsMissing is logged when a workbook lacks the MASTERLIST or
	// LOG IN sheet. The import is then silently ignored.
	MsgSheetsMissing = "workbook has no MASTERLIST or LOG IN sheet"

	// MsgUnexpectedError is shown for failures the user cannot act on.
	MsgUnexpectedError = "Something went wrong, see the log for details"

	// MsgNetworkUnavailable is shown when a remote spreadsheet cannot be
	// reached.
	MsgNetworkUnavailable = "Network unavailable or host unreachable"

	// MsgImportedFmt reports a finished import: record count and file name.
	MsgImportedFmt = "Imported %d records from %s"
	// MsgExportedFmt reports the written export file.
	MsgExportedFmt = "Exported to %s"
	// MsgPrintOpenedFmt reports the address of the opened print page.
	MsgPrintOpenedFmt = "Print page opened: %s"
	// MsgPrintNotOpenedFmt is shown when the browser could not be launched.
	MsgPrintNotOpenedFmt = "Could not open the browser. The print page is at %s"
	MsgCopied            = "Copied to clipboard"
	MsgNothingToCopy     = "Nothing to copy"
)
