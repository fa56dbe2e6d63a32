package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every issued access token.
// It extends the standard registered claims with the account email so a
// validated token binds both the account identifier ("sub") and the address
// it was issued for.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the address of the account the token was issued for.
	Email string `json:"email"`
}

// Token wraps a JWT access token with convenience accessors used by the
// authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// AccountID and Email are parsed copies of the "sub" and "email" claims,
// populated during issuance or validation so callers do not have to inspect
// the claim set.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization; only the compact string form is
	// meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// AccountID is the owner identifier extracted from the "sub" claim.
	AccountID string `json:"-"`

	// Email is the address extracted from the "email" claim.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
