package models

import "time"

// Account represents a registered identity: an email address with a secret.
// It carries the credential state used by the lifecycle engine (activation
// code, reset code, current access token) as well as optional profile fields
// mutable only by the authenticated owner.
//
// Sensitive fields must never be exposed outside trusted boundaries; they are
// excluded from JSON serialization so that an Account can be returned to the
// caller as-is on login and profile update.
type Account struct {
	// AccountID is the stable, immutable identifier of the account (UUID).
	AccountID string `json:"userId"`

	// Email is the unique address used for authentication, stored as given.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// Never the plaintext, never serialized.
	PasswordHash string `json:"-"`

	// Active reports whether the email has been verified. Accounts start
	// inactive and cannot obtain an access token until activated.
	Active bool `json:"active"`

	// EmailCode and EmailCodeExpiresAt form the single-use activation code
	// pair. Both are cleared when the code is consumed.
	EmailCode          string     `json:"-"`
	EmailCodeExpiresAt *time.Time `json:"-"`

	// ResetCode and ResetCodeExpiresAt form the single-use password-reset
	// code pair. Both are cleared when the code is consumed.
	ResetCode          string     `json:"-"`
	ResetCodeExpiresAt *time.Time `json:"-"`

	// AccessToken is the account's current bearer token, at most one per
	// account. A second login overwrites it, invalidating the first.
	AccessToken string `json:"-"`

	// Profile fields. Optional, overwritten together by UpdateProfile.
	Name    string `json:"name"`
	Birth   string `json:"birth"`
	Country string `json:"country"`
	Lang    string `json:"lang"`
	Pic     string `json:"pic"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// ProfileUpdate carries the full replacement set of profile fields.
// UpdateProfile overwrites all of them together; partial updates are not
// supported by the API.
type ProfileUpdate struct {
	Name    string
	Birth   string
	Country string
	Lang    string
	Pic     string
}
