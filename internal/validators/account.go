// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-xray-viewer/models"
)

// Field names accepted by [AccountValidator].
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldRole     = "role"
)

// AccountValidator checks login and registration input.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate accepts [models.Credentials] and [models.Account], by value or by
// pointer. Credentials default to the username and password checks;
// accounts also check the role.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		return v.validateAccount(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if IsBlank(c.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *AccountValidator) validateAccount(ctx context.Context, a models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername, FieldPassword:
			if err := v.validateCredentials(ctx, models.Credentials{Username: a.Username, Password: a.Password}, f); err != nil {
				return err
			}
		case FieldRole:
			if a.Role != "" && !a.Role.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidRole, a.Role)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// IsBlank reports whether s is empty or whitespace only. Usernames are
// otherwise kept and compared exactly as typed.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
