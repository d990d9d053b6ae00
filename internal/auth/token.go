package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bebe-pirat/edugame-api/internal/dependencies/clock"
	"github.com/bebe-pirat/edugame-api/internal/model"
)

// ErrInvalidToken indicates a token that is malformed, tampered with,
// signed with the wrong key, or expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// DefaultTokenTTL is the validity window for issued tokens
const DefaultTokenTTL = 24 * time.Hour

// Claims is the payload carried by a session token
type Claims struct {
	UserID   string     `json:"user_id"`
	Role     model.Role `json:"role"`
	Username string     `json:"username"`
	Avatar   string     `json:"avatar"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed session tokens.
// Tokens are stateless: verification is a pure function of token,
// signing key, and current time. There is no revocation list, so a
// token stays valid until its natural expiry even if the user is
// deleted or their role changes.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewTokenManager creates a manager with the given signing secret and TTL.
// A zero ttl falls back to DefaultTokenTTL.
func NewTokenManager(secret string, ttl time.Duration, clk clock.Clock) *TokenManager {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clk,
	}
}

// Issue signs a token carrying the user's identity claims
func (t *TokenManager) Issue(user *model.User) (string, error) {
	now := t.clock.Now()
	claims := Claims{
		UserID:   string(user.ID),
		Role:     user.Role,
		Username: user.Username,
		Avatar:   user.Avatar,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the token's signature and expiry and returns its claims.
// Returns ErrInvalidToken for any failure mode; callers cannot
// distinguish a forged token from an expired one.
func (t *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
