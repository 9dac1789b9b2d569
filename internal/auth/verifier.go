// Package auth is the bearer-credential gate in front of every project
// route. Tokens are issued elsewhere; this package only verifies them and
// resolves the caller identity.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller resolved from a verified credential.
type Identity struct {
	UserID string
	// TokenID is the jti claim when present, used for revocation checks.
	TokenID string
}

// TokenVerifier validates a raw bearer token and yields the caller identity.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (Identity, error)
}

type claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies HS256-signed tokens carrying a userId claim.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(_ context.Context, rawToken string) (Identity, error) {
	token, err := jwt.ParseWithClaims(rawToken, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, err
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return Identity{}, jwt.ErrSignatureInvalid
	}
	if c.UserID == "" {
		return Identity{}, fmt.Errorf("token missing userId claim")
	}

	return Identity{UserID: c.UserID, TokenID: c.ID}, nil
}
