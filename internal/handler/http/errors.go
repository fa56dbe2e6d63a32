package http

import "errors"

// Failure modes of bearer-token extraction in the auth middleware. All of
// them surface to the client as 401.
var (
	// ErrEmptyAuthorizationHeader: the request carries no Authorization
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header does not split into a scheme
	// and a value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme is present but the token value is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
