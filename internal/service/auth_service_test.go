package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/realestate-service/internal/auth"
	"github.com/spec-kit/realestate-service/internal/config"
	"github.com/spec-kit/realestate-service/internal/domain"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// fakeUserRepo is an in-memory UserRepository with the same conditional
// update semantics as the Postgres implementation.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int64]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *fakeUserRepo) ListByBusinessRole(_ context.Context, role domain.BusinessRole) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]domain.User, 0)
	for _, user := range r.users {
		if user.BusinessRole == role {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) SetResetToken(_ context.Context, email, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			tok := token
			exp := expiresAt
			user.ResetToken = &tok
			user.ResetTokenExpires = &exp
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeUserRepo) UpdatePasswordAndClearReset(_ context.Context, token, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ResetToken != nil && *user.ResetToken == token &&
			user.ResetTokenExpires != nil && user.ResetTokenExpires.After(time.Now()) {
			user.PasswordHash = passwordHash
			user.ResetToken = nil
			user.ResetTokenExpires = nil
			return nil
		}
	}
	return pgx.ErrNoRows
}

// setReset plants a reset token directly, bypassing the request flow.
func (r *fakeUserRepo) setReset(id int64, token string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := r.users[id]
	user.ResetToken = &token
	user.ResetTokenExpires = &expiresAt
}

func (r *fakeUserRepo) setRole(id int64, role domain.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[id].Role = role
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-secret",
		AccessTokenTTLHours:  24,
		RefreshTokenTTLDays:  30,
		ResetTokenTTLMinutes: 60,
		BcryptCost:           bcrypt.MinCost,
	}
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Test User",
		Role:         role,
		BusinessRole: domain.BusinessRoleBuyer,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestLoginIssuesTokenPair(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)
	seeded := seedUser(t, repo, "user@example.com", "s3cret", domain.RoleUser)

	user, pair, err := svc.Login(context.Background(), "user@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, user.ID)
	require.NotNil(t, pair)

	claims, err := svc.TokenManager().ParseToken(pair.AccessToken)
	require.NoError(t, err)
	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, userID)
	assert.Equal(t, string(domain.RoleUser), claims.Role)

	_, err = svc.TokenManager().ParseToken(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestLoginUniformFailure(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)
	seedUser(t, repo, "user@example.com", "s3cret", domain.RoleUser)

	for _, tc := range []struct{ email, password string }{
		{"user@example.com", "wrong"},
		{"nobody@example.com", "s3cret"},
	} {
		_, _, err := svc.Login(context.Background(), tc.email, tc.password)
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, 401, domainErr.HTTPStatus)
		assert.Equal(t, "Invalid credentials", domainErr.Message)
	}
}

func TestRefreshReflectsCurrentRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)
	seeded := seedUser(t, repo, "user@example.com", "s3cret", domain.RoleUser)

	_, pair, err := svc.Login(context.Background(), "user@example.com", "s3cret")
	require.NoError(t, err)

	// Promote after the first pair was issued.
	repo.setRole(seeded.ID, domain.RoleAgent)

	user, rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAgent, user.Role)

	claims, err := svc.TokenManager().ParseToken(rotated.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoleAgent), claims.Role)

	// The new refresh token is independently valid.
	_, _, err = svc.Refresh(context.Background(), rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshRejectsInvalidToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	_, _, err := svc.Refresh(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.ToDomainError(err).HTTPStatus)
}

func TestRefreshRejectsDeletedUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)
	seeded := seedUser(t, repo, "user@example.com", "s3cret", domain.RoleUser)

	_, pair, err := svc.Login(context.Background(), "user@example.com", "s3cret")
	require.NoError(t, err)

	repo.mu.Lock()
	delete(repo.users, seeded.ID)
	repo.mu.Unlock()

	_, _, err = svc.Refresh(context.Background(), pair.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.ToDomainError(err).HTTPStatus)
}

func TestRequestPasswordResetUnknownEmailSilent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	assert.NoError(t, svc.RequestPasswordReset(context.Background(), "nobody@example.com"))
}

func TestRequestPasswordResetOverwritesPrevious(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)
	seeded := seedUser(t, repo, "user@example.com", "s3cret", domain.RoleUser)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "user@example.com"))
	first, err := repo.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, first.ResetToken)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "user@example.com"))
	second, err := repo.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, second.ResetToken)

	assert.NotEqual(t, *first.ResetToken, *second.ResetToken)
}

func TestConfirmPasswordResetSingleUse(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)
	seeded := seedUser(t, repo, "user@example.com", "old-pass", domain.RoleUser)
	repo.setReset(seeded.ID, "reset-token", time.Now().Add(time.Hour))

	require.NoError(t, svc.ConfirmPasswordReset(context.Background(), "reset-token", "new-pass"))

	// Old password no longer works, new one does.
	_, _, err := svc.Login(context.Background(), "user@example.com", "old-pass")
	assert.Error(t, err)
	_, _, err = svc.Login(context.Background(), "user@example.com", "new-pass")
	assert.NoError(t, err)

	// Immediate second use of the same token fails.
	err = svc.ConfirmPasswordReset(context.Background(), "reset-token", "another-pass")
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, "Invalid or expired reset token", domainErr.Message)
}

func TestConfirmPasswordResetExpired(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)
	seeded := seedUser(t, repo, "user@example.com", "old-pass", domain.RoleUser)
	repo.setReset(seeded.ID, "reset-token", time.Now().Add(-time.Minute))

	err := svc.ConfirmPasswordReset(context.Background(), "reset-token", "new-pass")
	require.Error(t, err)
	assert.Equal(t, "Invalid or expired reset token", apperrors.ToDomainError(err).Message)

	// Password unchanged.
	_, _, err = svc.Login(context.Background(), "user@example.com", "old-pass")
	assert.NoError(t, err)
}

func TestConfirmPasswordResetUnknownToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)
	seedUser(t, repo, "user@example.com", "old-pass", domain.RoleUser)

	err := svc.ConfirmPasswordReset(context.Background(), "no-such-token", "new-pass")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}
