package utils

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-board/models"
	"github.com/golang-jwt/jwt/v5"
)

// IssueToken creates a signed HMAC-SHA256 JWT for the given user.
//
// The claims payload carries exactly the subject's numeric identifier
// ({"id": <integer>}); no expiry, issuer, or audience fields are set, so a
// token remains valid for as long as the signing key does. The same signKey
// must be used for issuance and validation or every previously issued token
// becomes unverifiable.
//
// Returns an error if signKey is empty or signing fails.
func IssueToken(userID int64, signKey string) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, errors.New("empty token sign key")
	}

	claims := &models.TokenClaims{ID: userID}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, UserID: userID}, nil
}

// ValidateToken verifies the signature and structural integrity of a raw
// token string and extracts its claims.
//
// Only HMAC-signed tokens are accepted; a token signed with any other method
// is rejected before its signature is checked. Returns:
//   - [ErrInvalidSignature] when the signature does not verify with signKey;
//   - [ErrMalformedToken] for every other validation or decoding failure.
func ValidateToken(tokenString, signKey string) (models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(signKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return models.TokenClaims{}, ErrInvalidSignature
		}
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return models.TokenClaims{}, ErrMalformedToken
	}

	return *claims, nil
}
