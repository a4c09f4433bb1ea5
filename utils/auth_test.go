package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	JwtKey = []byte("test_jwt_secret")

	token, err := GenerateJWT("65f000000000000000000001")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "65f000000000000000000001", claims.UserID)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestParseTokenRejectsBadInput(t *testing.T) {
	JwtKey = []byte("test_jwt_secret")

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)

	// token signed with a different key must be rejected
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: "someone"})
	signed, err := other.SignedString([]byte("wrong_key"))
	require.NoError(t, err)
	_, err = ParseToken(signed)
	assert.Error(t, err)

	// expired token must be rejected
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "someone",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	})
	signed, err = expired.SignedString(JwtKey)
	require.NoError(t, err)
	_, err = ParseToken(signed)
	assert.Error(t, err)
}
