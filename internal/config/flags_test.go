// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		wantHost    string
		wantPort    int
	}{
		{name: "localhost", input: "localhost:8181", wantHost: "localhost", wantPort: 8181},
		{name: "loopback ip", input: "127.0.0.1:9000", wantHost: "127.0.0.1", wantPort: 9000},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:abc", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "not-an-ip:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-auth-mode", "plaintext",
				"-idle-timeout", "1m",
				"-log-file", "client.log",
				"-rows-per-page", "50",
				"-d", "test.db",
				"-print-address", "127.0.0.1:8181",
				"-print-opener", "firefox",
				"-export-dir", "/exports",
				"-import-dir", "/imports",
				"-import-timeout", "15s",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "plaintext", cfg.App.AuthMode)
				assert.Equal(t, time.Minute, cfg.App.IdleTimeout)
				assert.Equal(t, "client.log", cfg.App.LogFile)
				assert.Equal(t, 50, cfg.View.RowsPerPage)
				assert.Equal(t, "test.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "127.0.0.1:8181", cfg.Print.Address)
				assert.Equal(t, "firefox", cfg.Print.Opener)
				assert.Equal(t, "/exports", cfg.Export.Dir)
				assert.Equal(t, "/imports", cfg.Import.Dir)
				assert.Equal(t, 15*time.Second, cfg.Import.RequestTimeout)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.App.AuthMode)
				assert.Empty(t, cfg.Print.Address)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Zero(t, cfg.View.RowsPerPage)
				assert.Empty(t, cfg.JSONFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_InvalidValues verifies that malformed flag values are
// returned as errors instead of terminating the process.
func TestParseFlags_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid print address", args: []string{"-print-address", "invalid"}},
		{name: "invalid duration", args: []string{"-idle-timeout", "soon"}},
		{name: "invalid int", args: []string{"-rows-per-page", "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}
