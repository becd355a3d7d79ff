package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller identity carried by a bearer token and attached to
// the request context by the auth middleware. It is a snapshot taken at
// issuance time; later profile changes do not affect it.
type Identity struct {
	UserID  int64  `json:"userId"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// BearerClaims is the JWT payload of a session token.
type BearerClaims struct {
	Identity
	jwt.RegisteredClaims
}

// Token wraps a signed session token.
type Token struct {
	// Token is the underlying JWT, available after signing or parsing.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Identity is the identity embedded into the token.
	Identity Identity `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// InviteClaims is the JWT payload of a class invitation link.
type InviteClaims struct {
	ClassID int64 `json:"classId"`
	UserID  int64 `json:"userId"`
	Role    Role  `json:"role"`
	jwt.RegisteredClaims
}

// ExternalIdentity is the set of verified claims extracted from an
// identity-provider assertion.
type ExternalIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}
