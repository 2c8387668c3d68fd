package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the payload carried inside a signed bearer token.
//
// The wire format is intentionally minimal: the serialized claims contain
// exactly {"id": <integer>}. The embedded [jwt.RegisteredClaims] satisfies
// the [jwt.Claims] interface and contributes nothing to the JSON output
// because all of its fields are omitted when empty. No expiry is set, so a
// token stays valid for as long as the signing key does.
type TokenClaims struct {
	// ID is the authenticated user's identifier, the sole claim.
	ID int64 `json:"id"`

	jwt.RegisteredClaims
}

// Token pairs the compact signed representation of a bearer token with the
// identifier of the user it was issued to.
type Token struct {
	// SignedString is the compact JWS form of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// UserID is the subject the token was issued for.
	// Internal server-side value, never serialized.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
