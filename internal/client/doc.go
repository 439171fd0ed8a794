// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive viewer application runtime.
//
// It restores or establishes a session, runs the record viewer, and returns
// to the login screen after a logout or an idle timeout.
package client
