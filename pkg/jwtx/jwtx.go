// Package jwtx decodes JSON Web Tokens for inspection. Tokens are parsed
// without signature verification: the point is to look inside a token, not
// to trust it.
package jwtx

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the decoded view of a JWT.
type Token struct {
	Header    map[string]any `json:"header"`
	Claims    map[string]any `json:"claims"`
	Signed    bool           `json:"signed"`     // signature part present (not verified)
	ExpiresAt string         `json:"expires_at,omitempty"`
	IssuedAt  string         `json:"issued_at,omitempty"`
}

// Decode parses a compact JWT and returns its header and claims.
// Malformed tokens return an error; signatures are never checked.
func Decode(tokenString string) (*Token, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, fmt.Errorf("empty token")
	}

	claims := jwt.MapClaims{}
	parsed, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, fmt.Errorf("decoding JWT: %w", err)
	}

	parts := strings.Split(tokenString, ".")

	out := &Token{
		Header: parsed.Header,
		Claims: map[string]any(claims),
		Signed: len(parts) == 3 && parts[2] != "",
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.UTC().Format(time.RFC3339)
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.UTC().Format(time.RFC3339)
	}

	return out, nil
}
