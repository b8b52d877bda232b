package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ParseHeaderValue splits a stored header-ready value back into credential
// parts, the inverse of HeaderValue. A value without a space is a bare
// token.
func ParseHeaderValue(v string) Credential {
	if i := strings.IndexByte(v, ' '); i > 0 {
		return Credential{Scheme: v[:i], Token: v[i+1:]}
	}
	return Credential{Token: v}
}

// ExpiresAt peeks at the credential's exp claim without verifying the
// signature. Validity is the backend's call; this is only a local hint the
// CLI uses to suggest a fresh login. Returns false for opaque (non-JWT)
// tokens or tokens without an expiry.
func (c Credential) ExpiresAt() (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether the credential carries an exp claim in the past.
// Opaque tokens are never considered expired locally.
func (c Credential) Expired(now time.Time) bool {
	exp, ok := c.ExpiresAt()
	return ok && exp.Before(now)
}
