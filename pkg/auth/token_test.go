package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signHS256(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func jwksServer(t *testing.T, kid string, pub *rsa.PublicKey) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_ = json.NewEncoder(w).Encode(JWKS{Keys: []JSONWebKey{{
			Kid: kid,
			Kty: "RSA",
			Alg: "RS256",
			Use: "sig",
			N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}}})
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestVerifier_HS256(t *testing.T) {
	v := NewVerifier(testSecret, nil)

	token := signHS256(t, jwt.MapClaims{
		"sub":   "0b6f8e7a-3c55-4f57-9c2a-1d1e4f6a8b90",
		"email": "ana@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "0b6f8e7a-3c55-4f57-9c2a-1d1e4f6a8b90", claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestVerifier_Rejects(t *testing.T) {
	v := NewVerifier(testSecret, nil)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"expired", signHS256(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Hour).Unix()})},
		{"no exp", signHS256(t, jwt.MapClaims{"sub": "u1"})},
		{"no sub", signHS256(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestVerifier_WrongSecret(t *testing.T) {
	v := NewVerifier("another-secret-another-secret-another", nil)
	token := signHS256(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()})

	_, err := v.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifier_RS256ViaJWKS(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv, hits := jwksServer(t, "key-1", &key.PublicKey)
	v := NewVerifier("", NewProvider(srv.URL))

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"sub": "0b6f8e7a-3c55-4f57-9c2a-1d1e4f6a8b90",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tok.Header["kid"] = "key-1"
	signed, err := tok.SignedString(key)
	require.NoError(t, err)

	claims, err := v.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "0b6f8e7a-3c55-4f57-9c2a-1d1e4f6a8b90", claims.Subject)

	// Second verification is served from the key cache.
	_, err = v.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestProvider_UnknownKidIsThrottled(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv, hits := jwksServer(t, "key-1", &key.PublicKey)
	p := NewProvider(srv.URL)

	_, err = p.GetKey(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = p.GetKey(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestVerifier_RS256WithoutJWKS(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()})
	tok.Header["kid"] = "key-1"
	signed, err := tok.SignedString(key)
	require.NoError(t, err)

	_, err = NewVerifier(testSecret, nil).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
