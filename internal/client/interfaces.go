// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-xray-viewer/internal/tui"
	"github.com/MKhiriev/go-xray-viewer/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until a user logs in. It returns [tui.ErrUserQuit]
	// when the user closes the application instead.
	LoginFlow(ctx context.Context, notice string) (models.Account, error)
	// MainLoop runs the record viewer for account and reports why it closed.
	MainLoop(ctx context.Context, account models.Account, notice string) (tui.MainLoopResult, error)
}
