package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of bearer-token claims the client surfaces for
// session introspection. The token is issued and verified by the backend;
// the client only decodes it for display.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// DecodeClaims parses the credential without verifying its signature and
// extracts the registered claims. Fails soft: an opaque or malformed token
// returns nil.
func DecodeClaims(credential string) *TokenClaims {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(credential, jwt.MapClaims{})
	if err != nil {
		return nil
	}

	out := &TokenClaims{}
	if sub, err := token.Claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	if iat, err := token.Claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	return out
}
