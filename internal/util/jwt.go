package util

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session tokens are stateless: the signed payload carries the admin id in
// "sub" and the expiry in "exp", nothing is stored server side and there is
// no revocation list. A token stops working purely by expiring.

const defaultTokenTTL = 7 * 24 * time.Hour

// GenerateToken signs an HS256 token for the given subject, valid for ttl.
func GenerateToken(secret, subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies a token and returns its claims. The signing method is
// pinned to HS256 rather than trusted from the token header, and a missing
// or past "exp" is rejected.
func ParseToken(secret, tokenStr string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
