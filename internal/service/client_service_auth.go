// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/store"
	"github.com/MKhiriev/go-xray-viewer/internal/utils"
	"github.com/MKhiriev/go-xray-viewer/internal/validators"
	"github.com/MKhiriev/go-xray-viewer/models"
)

// Local storage keys.
const (
	keyUsers        = "users"
	keyLoggedInUser = "loggedInUser"
)

// clientAuthService keeps accounts as a JSON array under [keyUsers] in a
// key-value store. How passwords are stored and whether sessions survive a
// restart depend on the mode it was built for.
type clientAuthService struct {
	mode      models.AuthMode
	accounts  store.KeyValueStore
	validator validators.Validator
	logger    *logger.Logger

	// digest turns a submitted password into its stored form.
	digest func(password string) string
	// matches reports whether a submitted password fits a stored one.
	matches func(password, stored string) bool
	// persistent sessions are mirrored to keyLoggedInUser and roles are kept.
	persistent bool

	mu      sync.RWMutex
	session *models.Account
}

// NewClientAuthService returns the hashed [ClientAuthService]: passwords are
// stored as SHA-256 digests in accounts and the session is persisted so the
// next run can restore it.
func NewClientAuthService(accounts store.KeyValueStore, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		mode:       models.AuthModeHashed,
		accounts:   accounts,
		validator:  validator,
		logger:     logger,
		digest:     utils.HashPassword,
		matches:    utils.EqualDigest,
		persistent: true,
	}
}

// NewPlaintextAuthService returns a [ClientAuthService] keeping plaintext
// accounts in a private in-memory store. Roles are not supported and nothing
// survives the process.
//
// Deprecated: use [NewClientAuthService].
func NewPlaintextAuthService(validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		mode:      models.AuthModePlaintext,
		accounts:  store.NewMemoryKeyValueStore(),
		validator: validator,
		logger:    logger,
		digest:    func(password string) string { return password },
		matches:   func(password, stored string) bool { return password == stored },
	}
}

func (a *clientAuthService) Mode() models.AuthMode {
	return a.mode
}

func (a *clientAuthService) Register(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.Credentials{Username: account.Username, Password: account.Password}); err != nil {
		return fmt.Errorf("%w: %w", ErrEmptyFields, err)
	}

	role := models.RoleUser
	if a.persistent && account.Role != "" {
		if err := a.validator.Validate(ctx, account, validators.FieldRole); err != nil {
			return err
		}
		role = account.Role
	}

	accounts, err := a.loadAccounts(ctx)
	if err != nil {
		return err
	}

	for _, existing := range accounts {
		if existing.Username == account.Username {
			return ErrUsernameTaken
		}
	}

	accounts = append(accounts, models.Account{
		Username: account.Username,
		Password: a.digest(account.Password),
		Role:     role,
	})
	if err = a.saveAccounts(ctx, accounts); err != nil {
		return err
	}

	log.Info().Str("username", account.Username).Str("role", string(role)).Msg("account registered")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrEmptyFields, err)
	}

	accounts, err := a.loadAccounts(ctx)
	if err != nil {
		return models.Account{}, err
	}

	var found *models.Account
	for i := range accounts {
		if accounts[i].Username == creds.Username && a.matches(creds.Password, accounts[i].Password) {
			found = &accounts[i]
			break
		}
	}
	if found == nil {
		log.Warn().Str("username", creds.Username).Msg("failed login attempt")
		return models.Account{}, ErrInvalidCredentials
	}

	session := models.Account{Username: found.Username, Role: found.Role}
	if a.persistent {
		raw, err := json.Marshal(session)
		if err != nil {
			return models.Account{}, fmt.Errorf("%w: %w", ErrWritingSession, err)
		}
		if err = a.accounts.Set(ctx, keyLoggedInUser, string(raw)); err != nil {
			return models.Account{}, fmt.Errorf("%w: %w", ErrWritingSession, err)
		}
	}

	a.setSession(&session)
	log.Info().Str("username", session.Username).Msg("user logged in")

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	current, ok := a.Current()
	a.setSession(nil)

	if a.persistent {
		if err := a.accounts.Delete(ctx, keyLoggedInUser); err != nil {
			return fmt.Errorf("%w: %w", ErrWritingSession, err)
		}
	}

	if ok {
		log.Info().Str("username", current.Username).Msg("user logged out")
	}
	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Account, error) {
	log := logger.FromContext(ctx)

	if !a.persistent {
		return models.Account{}, ErrNoActiveSession
	}

	raw, err := a.accounts.Get(ctx, keyLoggedInUser)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return models.Account{}, ErrNoActiveSession
		}
		return models.Account{}, fmt.Errorf("%w: %w", ErrReadingAccounts, err)
	}

	var session models.Account
	if err = json.Unmarshal([]byte(raw), &session); err != nil || validators.IsBlank(session.Username) {
		log.Warn().Msg("discarding unreadable stored session")
		_ = a.accounts.Delete(ctx, keyLoggedInUser)
		return models.Account{}, ErrNoActiveSession
	}
	if session.Role == "" {
		session.Role = models.RoleUser
	}
	session.Password = ""

	a.setSession(&session)
	log.Info().Str("username", session.Username).Msg("session restored")

	return session, nil
}

func (a *clientAuthService) Current() (models.Account, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.session == nil {
		return models.Account{}, false
	}
	return *a.session, true
}

func (a *clientAuthService) setSession(session *models.Account) {
	a.mu.Lock()
	a.session = session
	a.mu.Unlock()
}

func (a *clientAuthService) loadAccounts(ctx context.Context) ([]models.Account, error) {
	raw, err := a.accounts.Get(ctx, keyUsers)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingAccounts, err)
	}

	var accounts []models.Account
	if err = json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingAccounts, err)
	}

	for i := range accounts {
		if accounts[i].Role == "" {
			accounts[i].Role = models.RoleUser
		}
	}
	return accounts, nil
}

func (a *clientAuthService) saveAccounts(ctx context.Context, accounts []models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingAccounts, err)
	}
	if err = a.accounts.Set(ctx, keyUsers, string(raw)); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingAccounts, err)
	}
	return nil
}
