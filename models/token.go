package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the opaque bearer credential issued by the server at login.
//
// The client never verifies or enforces the token's contents: the server is
// the sole authority and an expired token simply manifests as a non-2xx
// response on the next authenticated call. [Token.ExpiresAt] peeks at the
// "exp" claim without verification and exists purely for diagnostics.
type Token string

// String returns the raw bearer string.
func (t Token) String() string {
	return string(t)
}

// IsZero reports whether no credential is present.
func (t Token) IsZero() bool {
	return t == ""
}

// ExpiresAt returns the token's expiry claim if the credential happens to be
// a JWT carrying one. The signature is NOT verified; the result must only be
// used for logging. The zero time is returned for opaque or claim-less
// tokens.
func (t Token) ExpiresAt() time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(string(t), jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
