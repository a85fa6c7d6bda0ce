package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credential is the access/refresh token pair identifying an authenticated session.
// A nil *Credential means anonymous.
type Credential struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// AccessClaims holds the parts of the access token the client cares about.
type AccessClaims struct {
	Subject   string
	ExpiresAt *time.Time
}

// Claims decodes the access token without verifying its signature. The client
// cannot verify it anyway; it only reads the subject and expiry for display.
// ok is false when the token is not a JWT.
func (c Credential) Claims() (claims AccessClaims, ok bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(c.AccessToken, jwt.MapClaims{})
	if err != nil {
		return AccessClaims{}, false
	}

	if sub, err := parsed.Claims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		claims.ExpiresAt = &t
	}

	return claims, true
}

// IsZero reports whether the credential carries no access token.
func (c Credential) IsZero() bool {
	return c.AccessToken == ""
}
