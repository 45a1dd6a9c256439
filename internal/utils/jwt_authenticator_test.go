package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJwtAuthenticator(t *testing.T) {
	jwksUri := "https://example.com/.well-known/jwks.json"
	auth := NewJwtAuthenticator(jwksUri)

	assert.Equal(t, jwksUri, auth.JwksUri)
	assert.Equal(t, 5*time.Minute, auth.cacheTTL)
}

func TestValidateTokenWithoutJwksUri(t *testing.T) {
	auth := NewJwtAuthenticator("")

	_, err := auth.ValidateToken("dummy.jwt.token")
	require.Error(t, err)
	assert.Equal(t, "JWKS URI not configured", err.Error())
}

func TestMapClaimsToUser(t *testing.T) {
	auth := NewJwtAuthenticator("https://example.com/.well-known/jwks.json")

	claims := map[string]interface{}{
		"sub":       "user123",
		"iss":       "https://auth.example.com",
		"client_id": "client123",
		"exp":       1234567890.0,
		"iat":       1234567800.0,
		"aud":       []interface{}{"audience1", "audience2"},
		"roles":     []interface{}{"admin", "user"},
		"scopes":    []interface{}{"read", "write"},
	}

	user, err := auth.mapClaimsToUser(claims)
	require.NoError(t, err)

	assert.Equal(t, "user123", user.Sub)
	assert.Equal(t, "https://auth.example.com", user.Iss)
	assert.Equal(t, "client123", user.ClientId)
	assert.Equal(t, int64(1234567890), user.Exp)
	assert.Equal(t, int64(1234567800), user.Iat)
	assert.Equal(t, []string{"audience1", "audience2"}, user.Aud)
	assert.Equal(t, []string{"admin", "user"}, user.Roles)
	assert.Equal(t, []string{"read", "write"}, user.Scopes)
}

func TestMapClaimsToUserWithSingleAudience(t *testing.T) {
	auth := NewJwtAuthenticator("https://example.com/.well-known/jwks.json")

	user, err := auth.mapClaimsToUser(map[string]interface{}{
		"aud": "single-audience",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"single-audience"}, user.Aud)
}

func jwksTestServer(t *testing.T, publicKey *rsa.PublicKey, kid string) *httptest.Server {
	t.Helper()

	key, err := jwk.FromRaw(publicKey)
	require.NoError(t, err)
	require.NoError(t, key.Set(jwk.KeyIDKey, kid))
	require.NoError(t, key.Set(jwk.AlgorithmKey, "RS256"))

	set := jwk.NewSet()
	require.NoError(t, set.AddKey(key))

	payload, err := json.Marshal(set)
	require.NoError(t, err)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
	}))
}

func signTestToken(t *testing.T, privateKey *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid

	signed, err := token.SignedString(privateKey)
	require.NoError(t, err)
	return signed
}

func TestValidateTokenWithRealSignature(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	server := jwksTestServer(t, &privateKey.PublicKey, "test-key")
	defer server.Close()

	auth := NewJwtAuthenticator(server.URL)

	t.Run("ValidToken", func(t *testing.T) {
		signed := signTestToken(t, privateKey, "test-key", jwt.MapClaims{
			"sub": "user123",
			"iss": "https://auth.example.com",
			"exp": time.Now().Add(time.Hour).Unix(),
			"iat": time.Now().Unix(),
		})

		user, err := auth.ValidateToken(signed)
		require.NoError(t, err)
		assert.Equal(t, "user123", user.Sub)
		assert.Equal(t, "https://auth.example.com", user.Iss)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		signed := signTestToken(t, privateKey, "test-key", jwt.MapClaims{
			"sub": "user123",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		_, err := auth.ValidateToken(signed)
		assert.Error(t, err)
	})

	t.Run("UnknownKeyID", func(t *testing.T) {
		signed := signTestToken(t, privateKey, "other-key", jwt.MapClaims{
			"sub": "user123",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := auth.ValidateToken(signed)
		assert.Error(t, err)
	})

	t.Run("WrongSigner", func(t *testing.T) {
		otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)

		signed := signTestToken(t, otherKey, "test-key", jwt.MapClaims{
			"sub": "user123",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err = auth.ValidateToken(signed)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := auth.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}
