package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey  = "abc123"
	testHost = "https://api.example.com/"
)

func mint(t *testing.T, key string, method jwt.SigningMethod, signKey any, claims jwt.MapClaims) string {
	t.Helper()
	if signKey == nil {
		signKey = []byte(key)
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString(signKey)
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub": "user-123",
		"iss": testHost,
		"aud": testHost,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func TestTryValidateAccepts(t *testing.T) {
	v := New()
	signed := mint(t, testKey, jwt.SigningMethodHS256, nil, validClaims())

	principal, ok := v.TryValidate(signed, testKey, testHost, testHost)

	require.True(t, ok)
	require.NotNil(t, principal)

	var sub string
	for _, c := range principal.Claims {
		if c.Type == "sub" {
			sub = c.Value
		}
	}
	assert.Equal(t, "user-123", sub)
}

func TestTryValidateRejects(t *testing.T) {
	v := New()

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	noExpiry := validClaims()
	delete(noExpiry, "exp")

	wrongIssuer := validClaims()
	wrongIssuer["iss"] = "https://other.example.com/"

	wrongAudience := validClaims()
	wrongAudience["aud"] = "https://other.example.com/"

	noSubject := validClaims()
	delete(noSubject, "sub")

	emptySubject := validClaims()
	emptySubject["sub"] = ""

	tests := []struct {
		name  string
		token string
		key   string
	}{
		{name: "wrong signing key", token: mint(t, "wrong-key", jwt.SigningMethodHS256, nil, validClaims()), key: testKey},
		{name: "expired", token: mint(t, testKey, jwt.SigningMethodHS256, nil, expired), key: testKey},
		{name: "no expiry claim", token: mint(t, testKey, jwt.SigningMethodHS256, nil, noExpiry), key: testKey},
		{name: "issuer mismatch", token: mint(t, testKey, jwt.SigningMethodHS256, nil, wrongIssuer), key: testKey},
		{name: "audience mismatch", token: mint(t, testKey, jwt.SigningMethodHS256, nil, wrongAudience), key: testKey},
		{name: "missing subject", token: mint(t, testKey, jwt.SigningMethodHS256, nil, noSubject), key: testKey},
		{name: "empty subject", token: mint(t, testKey, jwt.SigningMethodHS256, nil, emptySubject), key: testKey},
		{name: "alg none", token: mint(t, testKey, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims()), key: testKey},
		{name: "garbage", token: "not-a-token", key: testKey},
		{name: "empty token", token: "", key: testKey},
		{name: "empty key", token: mint(t, testKey, jwt.SigningMethodHS256, nil, validClaims()), key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				principal any
				ok        bool
			)
			assert.NotPanics(t, func() {
				principal, ok = v.TryValidate(tt.token, tt.key, testHost, testHost)
			})
			assert.False(t, ok)
			assert.Nil(t, principal)
		})
	}
}

func TestTryValidateDeterministicClaimOrder(t *testing.T) {
	v := New()
	claims := validClaims()
	claims["roles"] = []any{"reader", "writer"}
	claims["ver"] = "2"
	signed := mint(t, testKey, jwt.SigningMethodHS256, nil, claims)

	first, ok := v.TryValidate(signed, testKey, testHost, testHost)
	require.True(t, ok)
	second, ok := v.TryValidate(signed, testKey, testHost, testHost)
	require.True(t, ok)

	assert.Equal(t, first.Claims, second.Claims, "repeated validation yields identical principals")

	for i := 1; i < len(first.Claims); i++ {
		assert.LessOrEqual(t, first.Claims[i-1].Type, first.Claims[i].Type, "claims sorted by type")
	}
}
