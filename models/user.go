// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Password sentinels stored in place of a bcrypt hash for accounts that have
// no password of their own. Neither value is a valid bcrypt hash, so a
// password comparison against them always fails.
const (
	// FederatedPasswordSentinel marks an account created by an external
	// identity provider login.
	FederatedPasswordSentinel = "google-oauth"

	// InvitationPasswordSentinel marks a placeholder account created when a
	// class invitation was sent to an unknown email.
	InvitationPasswordSentinel = "invite"
)

// User is a row of the users table: the credential store record.
//
// Invariants kept by the store:
//   - Email is unique (case-insensitively).
//   - VerifyTokenHash is non-nil only while Verified is false.
//   - ResetTokenHash and ResetExpires are either both nil or both set.
type User struct {
	// UserID is the server-assigned identifier.
	UserID int64 `json:"id"`

	// Email is the normalised (trimmed, lower-cased) login address.
	Email string `json:"email"`

	// PasswordHash is a bcrypt hash or one of the password sentinels.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// Profile holds the display name and avatar URL.
	Profile Profile `json:"profile"`

	// Verified reports whether the email address was confirmed.
	Verified bool `json:"verified"`

	// VerifyTokenHash is the SHA-256 hex digest of the outstanding
	// verification token, if any.
	VerifyTokenHash *string `json:"-"`

	// ResetTokenHash is the SHA-256 hex digest of the outstanding password
	// reset token, if any.
	ResetTokenHash *string `json:"-"`

	// ResetExpires is the moment the outstanding reset token stops working.
	ResetExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasPassword reports whether the account can authenticate with a password,
// i.e. its password hash is not one of the sentinels.
func (u User) HasPassword() bool {
	return u.PasswordHash != "" &&
		u.PasswordHash != FederatedPasswordSentinel &&
		u.PasswordHash != InvitationPasswordSentinel
}

// IsInvitationPlaceholder reports whether the row was created by a class
// invitation and has never been claimed by a signup.
func (u User) IsInvitationPlaceholder() bool {
	return !u.Verified && u.PasswordHash == InvitationPasswordSentinel
}

// Public returns the client-facing view of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.UserID,
		Email:     u.Email,
		Name:      u.Profile.Name,
		Picture:   u.Profile.Picture,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
	}
}

// Identity returns the identity embedded into bearer tokens at issuance.
func (u User) Identity() Identity {
	return Identity{
		UserID:  u.UserID,
		Email:   u.Email,
		Name:    u.Profile.Name,
		Picture: u.Profile.Picture,
	}
}

// Profile is the user's metadata blob, persisted as JSONB.
type Profile struct {
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// Value implements [driver.Valuer] so a Profile can be written to a JSONB column.
func (p Profile) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("error marshaling profile: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner] for JSONB profile columns.
func (p *Profile) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = Profile{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported profile column type")
	}

	var decoded Profile
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("error unmarshaling profile: %w", err)
	}
	*p = decoded
	return nil
}

// PublicUser is the user representation returned to API clients.
type PublicUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}
