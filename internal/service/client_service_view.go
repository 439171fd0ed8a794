// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-xray-viewer/internal/store"
	"github.com/MKhiriev/go-xray-viewer/internal/view"
	"github.com/MKhiriev/go-xray-viewer/models"
)

type clientViewService struct {
	records store.RecordRepository
}

func NewClientViewService(records store.RecordRepository) ClientViewService {
	return &clientViewService{records: records}
}

func (s *clientViewService) Project(state models.ViewState) view.Projection {
	return view.Project(s.records.Snapshot(), state)
}
