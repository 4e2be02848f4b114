package jwtx

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildToken assembles an unsigned-looking compact JWT from raw header and
// claim maps. The signature part is fake; Decode never verifies it.
func buildToken(t *testing.T, header, claims map[string]any, signature string) string {
	t.Helper()
	enc := func(m map[string]any) string {
		b, err := json.Marshal(m)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(b)
	}
	return enc(header) + "." + enc(claims) + "." + signature
}

func TestDecode(t *testing.T) {
	token := buildToken(t,
		map[string]any{"alg": "HS256", "typ": "JWT"},
		map[string]any{"sub": "1234567890", "name": "John Doe", "iat": float64(1516239022)},
		"sig-bytes",
	)

	tok, err := Decode(token)
	require.NoError(t, err)

	assert.Equal(t, "HS256", tok.Header["alg"])
	assert.Equal(t, "JWT", tok.Header["typ"])
	assert.Equal(t, "1234567890", tok.Claims["sub"])
	assert.Equal(t, "John Doe", tok.Claims["name"])
	assert.True(t, tok.Signed)
	assert.Equal(t, "2018-01-18T01:30:22Z", tok.IssuedAt)
	assert.Empty(t, tok.ExpiresAt)
}

func TestDecodeExpiry(t *testing.T) {
	exp := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	token := buildToken(t,
		map[string]any{"alg": "none"},
		map[string]any{"exp": float64(exp.Unix())},
		"",
	)

	tok, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "2030-06-01T12:00:00Z", tok.ExpiresAt)
	assert.False(t, tok.Signed, "empty signature part means unsigned")
}

func TestDecodeTrimsWhitespace(t *testing.T) {
	token := buildToken(t,
		map[string]any{"alg": "HS256"},
		map[string]any{"sub": "x"},
		"s",
	)

	tok, err := Decode("  " + token + "\n")
	require.NoError(t, err)
	assert.Equal(t, "x", tok.Claims["sub"])
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"not a token", "hello world"},
		{"two parts garbage", "abc.def"},
		{"invalid base64", "!!!.???.###"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token)
			assert.Error(t, err)
		})
	}
}
