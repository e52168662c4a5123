package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload embedded in a signed session token: the
// identity email plus the standard validity window (iat, nbf, exp).
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// Exactly one signing algorithm is fixed per deployment; it is never
// negotiated per request.
type TokenService interface {
	// Issue creates a signed token carrying the identity email, valid from
	// now until now plus the fixed session TTL.
	Issue(email string) (string, error)

	// Verify parses and validates a token string, returning its claims.
	// Signature, key id, not-before and expiry failures are distinct errors
	// internally but callers must surface all of them as one unauthorized
	// outcome.
	Verify(tokenString string) (*SessionClaims, error)
}
