package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/instaguard/instaguard/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKID = "test-key"

func newTestVerifier(t *testing.T, clientID string) (*GoogleVerifier, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	jwks, err := json.Marshal(map[string]any{
		"keys": []map[string]string{{
			"kty": "RSA",
			"kid": testKID,
			"alg": "RS256",
			"use": "sig",
			"n":   enc.EncodeToString(key.N.Bytes()),
			"e":   enc.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}},
	})
	require.NoError(t, err)

	v, err := NewGoogleVerifierFromJWKS(jwks, clientID)
	require.NoError(t, err)
	return v, key
}

func signGoogle(t *testing.T, key *rsa.PrivateKey, claims googleClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = testKID
	s, err := tok.SignedString(key)
	require.NoError(t, err)
	return s
}

func validGoogleClaims() googleClaims {
	return googleClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://accounts.google.com",
			Audience:  jwt.ClaimStrings{"client-1"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "jane@gmail.com",
		Name:  "Jane Doe",
	}
}

func TestGoogleVerifier_Verify(t *testing.T) {
	v, key := newTestVerifier(t, "client-1")

	tests := []struct {
		name    string
		mutate  func(c *googleClaims)
		wantErr error
	}{
		{name: "valid", mutate: func(c *googleClaims) {}},
		{name: "bare issuer", mutate: func(c *googleClaims) { c.Issuer = "accounts.google.com" }},
		{name: "foreign issuer", mutate: func(c *googleClaims) { c.Issuer = "https://evil.example" }, wantErr: common.ErrInvalidToken},
		{name: "other audience", mutate: func(c *googleClaims) { c.Audience = jwt.ClaimStrings{"client-2"} }, wantErr: common.ErrInvalidToken},
		{name: "expired", mutate: func(c *googleClaims) { c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour)) }, wantErr: common.ErrInvalidToken},
		{name: "no email", mutate: func(c *googleClaims) { c.Email = "" }, wantErr: ErrGoogleEmailMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validGoogleClaims()
			tt.mutate(&c)

			id, err := v.Verify(context.Background(), signGoogle(t, key, c))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &GoogleIdentity{Email: "jane@gmail.com", Name: "Jane Doe"}, id)
		})
	}
}

func TestGoogleVerifier_UnknownKey(t *testing.T) {
	v, _ := newTestVerifier(t, "client-1")
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), signGoogle(t, other, validGoogleClaims()))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGoogleVerifier_Garbage(t *testing.T) {
	v, _ := newTestVerifier(t, "")

	_, err := v.Verify(context.Background(), "garbage")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
