package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/realestate-service/internal/domain"
)

const testSecret = "test-secret"

func testUser() *domain.User {
	return &domain.User{ID: 42, Email: "agent@example.com", Role: domain.RoleAgent}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 30*24*time.Hour)
	user := testUser()

	token, err := tm.IssueAccessToken(user)
	require.NoError(t, err)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	role, ok := claims.AuthRole()
	require.True(t, ok)
	assert.Equal(t, user.Role, role)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestTokenClaimNames(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, time.Hour)

	token, err := tm.IssueAccessToken(testUser())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &raw))
	assert.Contains(t, raw, "sub")
	assert.Contains(t, raw, "iat")
	assert.Contains(t, raw, "exp")
	assert.Contains(t, raw, "role")
	assert.Equal(t, "42", raw["sub"])
	assert.Equal(t, "agent", raw["role"])
}

func TestExpiredTokenRejected(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, time.Hour)

	// Validly signed token whose expiry is in the past.
	now := time.Now()
	claims := &Claims{
		Role: "agent",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedTokenRejected(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, time.Hour)

	token, err := tm.IssueAccessToken(testUser())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip a character inside the header, the payload and the signature.
	positions := []int{
		len(parts[0]) / 2,
		len(parts[0]) + 1 + len(parts[1])/2,
		len(parts[0]) + len(parts[1]) + 2,
	}
	for _, pos := range positions {
		tampered := []byte(token)
		if tampered[pos] == 'A' {
			tampered[pos] = 'B'
		} else {
			tampered[pos] = 'A'
		}
		_, err := tm.ParseToken(string(tampered))
		assert.ErrorIs(t, err, ErrInvalidToken, "byte flip at %d must invalidate the token", pos)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, time.Hour)
	other := NewTokenManager("other-secret", time.Hour, time.Hour)

	token, err := tm.IssueAccessToken(testUser())
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tm.ParseToken(input)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestRefreshTokenLifetime(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 30*24*time.Hour)
	user := testUser()

	access, err := tm.IssueAccessToken(user)
	require.NoError(t, err)
	refresh, err := tm.IssueRefreshToken(user)
	require.NoError(t, err)

	accessClaims, err := tm.ParseToken(access)
	require.NoError(t, err)
	refreshClaims, err := tm.ParseToken(refresh)
	require.NoError(t, err)

	assert.True(t, refreshClaims.ExpiresAt.After(accessClaims.ExpiresAt.Time))
}
