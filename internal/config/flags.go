// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-auth-mode hashed|plaintext
//	-idle-timeout session idle timeout (e.g. "5m")
//	-log-file client log file
//	-rows-per-page initial page size
//	-d database DSN
//	-print-address print server address in format [host]:[port]
//	-print-opener command used to open print documents
//	-export-dir export directory
//	-import-dir file picker start directory
//	-import-timeout remote import timeout (e.g. "30s")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)

	var printAddress NetAddress
	var authMode, logFile, dsn, printOpener, exportDir, importDir, jsonConfigPath string
	var idleTimeout, importTimeout time.Duration
	var rowsPerPage int

	fs.StringVar(&authMode, "auth-mode", "", "Account storage mode: hashed or plaintext")
	fs.DurationVar(&idleTimeout, "idle-timeout", 0, "Session idle timeout (e.g., 5m)")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.IntVar(&rowsPerPage, "rows-per-page", 0, "Initial rows per page")
	fs.StringVar(&dsn, "d", "", "Database DSN")
	fs.Var(&printAddress, "print-address", "Print server address host:port")
	fs.StringVar(&printOpener, "print-opener", "", "Command used to open print documents")
	fs.StringVar(&exportDir, "export-dir", "", "Export directory")
	fs.StringVar(&importDir, "import-dir", "", "File picker start directory")
	fs.DurationVar(&importTimeout, "import-timeout", 0, "Remote import timeout (e.g., 30s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AuthMode:    authMode,
			IdleTimeout: idleTimeout,
			LogFile:     logFile,
		},
		View: View{RowsPerPage: rowsPerPage},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Print: Print{
			Address: printAddress.String(),
			Opener:  printOpener,
		},
		Export: Export{Dir: exportDir},
		Import: Import{
			Dir:            importDir,
			RequestTimeout: importTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
