package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a new
	// account fails because an account with the same email already exists.
	// Uniqueness is enforced by the database constraint, so concurrent
	// signups with the same email cannot both succeed.
	ErrEmailAlreadyExists = errors.New("email is already in use")

	// ErrNoAccountWasFound is returned when a query expected to match at
	// least one account produces an empty result set.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrCodeInvalidOrExpired is returned when a conditional update keyed on
	// a verification or reset code affects no rows: the code does not exist,
	// was already consumed, or is past its expiry.
	ErrCodeInvalidOrExpired = errors.New("code is invalid or has expired")

	// ErrNoArchiveWasFound is returned when an archive lookup by ID matches
	// no record.
	ErrNoArchiveWasFound = errors.New("no archive was found")
)
