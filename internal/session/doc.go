// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the idle timer that ends a logged-in session
// after a period without user input.
package session
