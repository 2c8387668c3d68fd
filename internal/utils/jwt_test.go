package utils

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "unit-test-sign-key"

// ─────────────────────────────────────────────
// IssueToken / ValidateToken — round trip
// ─────────────────────────────────────────────

func TestIssueToken_RoundTrip(t *testing.T) {
	const userID int64 = 42

	token, err := IssueToken(userID, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, userID, token.UserID)

	claims, err := ValidateToken(token.SignedString, testSignKey)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.ID)
}

// TestIssueToken_PayloadShape decodes the JWT payload segment and verifies
// the claims carry exactly the numeric identifier: no expiry, issuer, or
// audience is ever embedded.
func TestIssueToken_PayloadShape(t *testing.T) {
	token, err := IssueToken(7, testSignKey)
	require.NoError(t, err)

	parts := strings.Split(token.SignedString, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var claims map[string]any
	require.NoError(t, json.Unmarshal(payload, &claims))

	assert.Equal(t, map[string]any{"id": float64(7)}, claims)
}

func TestIssueToken_EmptySignKey(t *testing.T) {
	_, err := IssueToken(1, "")
	require.Error(t, err)
}

// ─────────────────────────────────────────────
// ValidateToken — failure modes
// ─────────────────────────────────────────────

func TestValidateToken_WrongSignKey(t *testing.T) {
	token, err := IssueToken(42, testSignKey)
	require.NoError(t, err)

	_, err = ValidateToken(token.SignedString, "completely different key")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidateToken_TamperedPayload(t *testing.T) {
	token, err := IssueToken(42, testSignKey)
	require.NoError(t, err)

	parts := strings.Split(token.SignedString, ".")
	require.Len(t, parts, 3)

	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"id":9001}`))
	tampered := strings.Join([]string{parts[0], forged, parts[2]}, ".")

	_, err = ValidateToken(tampered, testSignKey)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidateToken_Malformed(t *testing.T) {
	tests := []struct {
		name        string
		tokenString string
	}{
		{name: "empty string", tokenString: ""},
		{name: "not a JWT at all", tokenString: "garbage"},
		{name: "two segments only", tokenString: "aaaa.bbbb"},
		{name: "non-base64 segments", tokenString: "!!.!!.!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(tt.tokenString, testSignKey)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

// TestValidateToken_RejectsNonHMAC verifies that a token declaring a
// non-HMAC signing algorithm is rejected before signature verification.
func TestValidateToken_RejectsNonHMAC(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"id":42}`))
	unsigned := header + "." + payload + "."

	_, err := ValidateToken(unsigned, testSignKey)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedToken)
}
