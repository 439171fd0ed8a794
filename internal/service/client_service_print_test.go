// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-xray-viewer/internal/logger"
	"github.com/MKhiriev/go-xray-viewer/internal/mock"
	"github.com/MKhiriev/go-xray-viewer/internal/printer"
	"github.com/MKhiriev/go-xray-viewer/models"
)

func printRecords() []models.Record {
	return []models.Record{
		{models.ColumnXRayNo: "10", models.ColumnPatient: "Ann"},
		{models.ColumnXRayNo: "11", models.ColumnPatient: "Bob"},
		{models.ColumnXRayNo: "12", models.ColumnPatient: "Cara"},
	}
}

func TestClientPrintService_Print(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	surface := mock.NewMockSurface(ctrl)
	svc := NewClientPrintService(surface, logger.Nop())
	ctx := context.Background()

	surface.EXPECT().Open(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, doc []byte) (string, error) {
		assert.Contains(t, string(doc), "Bob")
		assert.Contains(t, string(doc), "Cara")
		assert.NotContains(t, string(doc), "Ann")
		return "http://127.0.0.1:1/print/abc", nil
	})

	location, err := svc.Print(ctx, printRecords(), models.PrintRange{Start: "11", End: "12"})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:1/print/abc", location)
}

func TestClientPrintService_Print_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		r       models.PrintRange
		wantErr error
	}{
		{"not a number", models.PrintRange{Start: "abc", End: "12"}, printer.ErrInvalidRange},
		{"empty bound", models.PrintRange{Start: "10"}, printer.ErrInvalidRange},
		{"nothing in range", models.PrintRange{Start: "50", End: "60"}, printer.ErrNoRecordsInRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// the surface must not be opened
			surface := mock.NewMockSurface(ctrl)
			_, err := NewClientPrintService(surface, logger.Nop()).Print(context.Background(), printRecords(), tt.r)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientPrintService_Print_SurfaceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	surface := mock.NewMockSurface(ctrl)
	surface.EXPECT().Open(gomock.Any(), gomock.Any()).Return("http://127.0.0.1:1/print/abc", errors.New("no browser"))

	location, err := NewClientPrintService(surface, logger.Nop()).
		Print(context.Background(), printRecords(), models.PrintRange{Start: "10", End: "10"})
	require.Error(t, err)
	assert.Equal(t, "http://127.0.0.1:1/print/abc", location, "the location is still reported so the user can open it")
}
