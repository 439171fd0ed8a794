// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
type StructuredJSONConfig struct {
	App struct {
		AuthMode    string   `json:"auth_mode"`
		IdleTimeout Duration `json:"idle_timeout"`
		LogFile     string   `json:"log_file"`
	} `json:"app,omitempty"`

	View struct {
		RowsPerPage int `json:"rows_per_page"`
	} `json:"view,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Print struct {
		Address       string `json:"address"`
		DocumentLimit int    `json:"document_limit"`
		Opener        string `json:"opener"`
	} `json:"print,omitempty"`

	Export struct {
		Dir string `json:"dir"`
	} `json:"export,omitempty"`

	Import struct {
		Dir            string   `json:"dir"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"import,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AuthMode:    jsonCfg.App.AuthMode,
			IdleTimeout: time.Duration(jsonCfg.App.IdleTimeout),
			LogFile:     jsonCfg.App.LogFile,
		},
		View: View{RowsPerPage: jsonCfg.View.RowsPerPage},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Print: Print{
			Address:       jsonCfg.Print.Address,
			DocumentLimit: jsonCfg.Print.DocumentLimit,
			Opener:        jsonCfg.Print.Opener,
		},
		Export: Export{Dir: jsonCfg.Export.Dir},
		Import: Import{
			Dir:            jsonCfg.Import.Dir,
			RequestTimeout: time.Duration(jsonCfg.Import.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
