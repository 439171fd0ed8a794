// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/store"
)

// sessionScopedAuthService drops the imported records whenever a session
// ends, so the next account starts with an empty table.
type sessionScopedAuthService struct {
	ClientAuthService
	records store.RecordRepository
}

func newSessionScopedAuthService(auth ClientAuthService, records store.RecordRepository) ClientAuthService {
	return &sessionScopedAuthService{ClientAuthService: auth, records: records}
}

// Logout ends the session and clears the record store, even when the
// stored session could not be removed.
func (s *sessionScopedAuthService) Logout(ctx context.Context) error {
	err := s.ClientAuthService.Logout(ctx)

	dropped := s.records.Len()
	s.records.Clear()
	logger.FromContext(ctx).Debug().Int("records", dropped).Msg("session records cleared")

	return err
}
