// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-xray-viewer/internal/app"
	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/service"
	"github.com/MKhiriev/go-xray-viewer/internal/tui"
	"github.com/MKhiriev/go-xray-viewer/models"
)

var (
	errNoAuthService = errors.New("client: auth service is not set")
	errNoUI          = errors.New("client: ui is not set")
)

type App struct {
	auth   service.ClientAuthService
	ui     UI
	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil {
		return nil, errNoAuthService
	}
	if ui == nil {
		return nil, errNoUI
	}

	return &App{auth: services.AuthService, ui: ui, logger: logger}, nil
}

// Run restores the previous session or asks the user to log in, then keeps
// the viewer running until the user quits. A logout or an idle timeout ends
// the session and shows the login screen again.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	account, err := a.auth.RestoreSession(ctx)
	notice := ""
	switch {
	case err == nil:
		a.logger.Info().Str("username", account.Username).Msg("session restored")
	case errors.Is(err, service.ErrNoActiveSession):
		account, notice, err = a.login(ctx, "")
		if err != nil {
			return quitOrErr(err)
		}
	default:
		return fmt.Errorf("restore session: %w", err)
	}

	for {
		result, err := a.ui.MainLoop(ctx, account, notice)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}

		switch result {
		case tui.ResultLogout:
			notice = app.MsgLoggedOut
		case tui.ResultExpired:
			notice = app.MsgSessionExpired
		default:
			a.logger.Info().Str("username", account.Username).Msg("viewer closed")
			return nil
		}

		if err = a.auth.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().
			Str("username", account.Username).
			Str("reason", result.String()).
			Msg("session ended")

		account, notice, err = a.login(ctx, notice)
		if err != nil {
			return quitOrErr(err)
		}
	}
}

// login runs the login flow and returns the welcome notice for the viewer.
func (a *App) login(ctx context.Context, notice string) (models.Account, string, error) {
	account, err := a.ui.LoginFlow(ctx, notice)
	if err != nil {
		return models.Account{}, "", err
	}
	return account, app.MsgWelcome + account.Username, nil
}

func quitOrErr(err error) error {
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return fmt.Errorf("login: %w", err)
}
