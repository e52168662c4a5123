// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/PradyunT/kaizen-task/config"
	"github.com/PradyunT/kaizen-task/internal/domain/service"
	"github.com/PradyunT/kaizen-task/internal/errors"
)

const (
	// keyID is embedded in the token header and checked on verification.
	keyID = "kaizen-task-key"

	// sessionTTL is the fixed validity window of a session token.
	sessionTTL = time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using
// HMAC-SHA256 signed JWTs. The signing key is loaded once at startup and held
// for the process lifetime.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Token),
		now:    time.Now,
	}, nil
}

// Issue creates a signed token with the identity email and the standard
// validity window: iat = nbf = now, exp = now + 1h.
func (s *jwtService) Issue(email string) (string, error) {
	now := s.now()
	claims := &service.SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = keyID

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify parses the token without trusting its contents, checks the key id
// and signing method, and validates signature, nbf and exp. The individual
// failure reasons stay in the returned error for server-side logs only.
func (s *jwtService) Verify(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		if kid, _ := token.Header["kid"].(string); kid != keyID {
			return nil, errors.New("unknown signing key id")
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "token validation failed")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Email == "" {
		return nil, errors.New("token carries no identity claim")
	}

	return claims, nil
}
