// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the access level attached to an [Account].
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Roles lists the selectable roles in display order.
var Roles = []Role{RoleUser, RoleAdmin}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Account is a locally registered viewer account.
//
// Password holds the lowercase hex SHA-256 digest of the password when the
// hashed auth mode is used, and the raw password in the deprecated plaintext
// mode. The JSON shape matches the persisted "users" and "loggedInUser" keys.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

// IsAdmin reports whether the account carries the admin role.
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Credentials is the login form input.
type Credentials struct {
	Username string
	Password string
}

// AuthMode selects the account storage strategy.
type AuthMode string

const (
	// AuthModeHashed stores SHA-256 digests in the persistent key-value store.
	AuthModeHashed AuthMode = "hashed"
	// AuthModePlaintext keeps plaintext accounts in memory for the lifetime
	// of the process.
	//
	// Deprecated: kept for compatibility with the legacy viewer; use
	// [AuthModeHashed].
	AuthModePlaintext AuthMode = "plaintext"
)

// Valid reports whether m is a known auth mode.
func (m AuthMode) Valid() bool {
	return m == AuthModeHashed || m == AuthModePlaintext
}
