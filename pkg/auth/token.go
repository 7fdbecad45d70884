// Package auth issues and verifies api tokens of the sandbox server.
//
// Tokens are JWT signed with HS256. The subject is the user name.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

const Issuer = "plx-sandbox"

type Claims struct {
	jwt.RegisteredClaims

	// organization the user belongs to.
	Organization string `json:"plx/org,omitempty"`
}

// User is the subject of the token.
func (c *Claims) User() string {
	return c.Subject
}

// Issue signs a token for user.
//
// # Args
//
// - secret: key to sign
//
// - user: subject of the token
//
// - org: organization of the user. It may be empty.
//
// - ttl: lifetime of the token. 0 means it never expires.
//
// - now: issuing time
func Issue(secret []byte, user string, org string, ttl time.Duration, now time.Time) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("secret is empty")
	}
	if user == "" {
		return "", errors.New("user is empty")
	}
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   Issuer,
			Subject:  user,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Organization: org,
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verify parses token and checks its signature and expiry.
//
// error wraps ErrInvalidToken when the token is not acceptable.
func Verify(secret []byte, token string) (*Claims, error) {
	claims := new(Claims)
	_, err := jwt.ParseWithClaims(
		token, claims,
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: no subject", ErrInvalidToken)
	}
	return claims, nil
}
