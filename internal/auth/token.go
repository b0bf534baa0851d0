package auth

import (
	"errors"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/realestate-service/internal/domain"
)

// ErrInvalidToken covers signature mismatch, malformed input and expiry.
var ErrInvalidToken = errors.New("invalid token")

// ErrTokenCreation signals a signing/serialization failure. Not expected in
// normal operation; it points at a configuration fault.
var ErrTokenCreation = errors.New("token creation failed")

// TokenManager issues and validates signed access and refresh tokens. It is
// safe for concurrent use; the secret is set once at construction and never
// mutated.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager builds a manager from the injected signing secret and
// token lifetimes.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Claims describes the JWT payload: sub, iat, exp, role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the numeric subject id.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// AuthRole parses the role claim into an authorization role.
func (c *Claims) AuthRole() (domain.Role, bool) {
	return domain.ParseRole(c.Role)
}

// IssueAccessToken signs a short-lived token for the user.
func (tm *TokenManager) IssueAccessToken(user *domain.User) (string, error) {
	return tm.issue(user, tm.accessTTL)
}

// IssueRefreshToken signs a long-lived token for the user.
func (tm *TokenManager) IssueRefreshToken(user *domain.User) (string, error) {
	return tm.issue(user, tm.refreshTTL)
}

func (tm *TokenManager) issue(user *domain.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", ErrTokenCreation
	}
	return signed, nil
}

// ParseToken validates the signature and expiry and returns claims. It does
// not re-check that the subject still exists.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
