package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	util := NewAccessTokenUtil()
	token, err := util.EncodeToken("64f1c2d4e5a6b7c8d9e0f1a2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c2d4e5a6b7c8d9e0f1a2", claims["sub"])
}

func TestDecodeTokenWrongSecret(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	util := NewAccessTokenUtil()
	token, err := util.EncodeToken("64f1c2d4e5a6b7c8d9e0f1a2")
	require.NoError(t, err)

	t.Setenv("SECRET_JWT", "another-secret")
	_, err = util.DecodeToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeTokenExpired(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	util := NewAccessTokenUtil()
	issuedAt := time.Now().Add(-2 * TokenValidity)
	token, err := util.EncodeClaims(map[string]interface{}{
		"sub": "64f1c2d4e5a6b7c8d9e0f1a2",
		"iat": issuedAt.Unix(),
		"exp": issuedAt.Add(TokenValidity).Unix(),
	})
	require.NoError(t, err)

	_, err = util.DecodeToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecodeTokenGarbage(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	_, err := NewAccessTokenUtil().DecodeToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
