package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/realestate-service/internal/domain"
)

// UserRepository defines persistence access for platform accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	ListByBusinessRole(ctx context.Context, role domain.BusinessRole) ([]domain.User, error)
	SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error
	UpdatePasswordAndClearReset(ctx context.Context, token, passwordHash string) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, email, password_hash, full_name, phone, role, business_role,
        verified, profile_image_url, reset_token, reset_token_expires, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (email, password_hash, full_name, phone, role, business_role, verified)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.Phone,
		user.Role,
		user.BusinessRole,
		user.Verified,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *userRepository) ListByBusinessRole(ctx context.Context, role domain.BusinessRole) ([]domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE business_role=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// SetResetToken writes the reset token fields on the user row. A second
// request overwrites the previous token, so at most one is ever live.
// Absent emails update zero rows and surface no error.
func (r *userRepository) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error {
	const query = `
        UPDATE users SET reset_token=$1, reset_token_expires=$2, updated_at=NOW()
        WHERE email=$3`

	cmd, err := r.pool.Exec(ctx, query, token, expiresAt, email)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdatePasswordAndClearReset consumes a reset token in a single conditional
// update: the password write and the token clear either both happen or
// neither does, and only while the token is live. A concurrent second
// confirmation sees zero rows affected.
func (r *userRepository) UpdatePasswordAndClearReset(ctx context.Context, token, passwordHash string) error {
	const query = `
        UPDATE users SET password_hash=$1, reset_token=NULL, reset_token_expires=NULL, updated_at=NOW()
        WHERE reset_token=$2 AND reset_token_expires > NOW()`

	cmd, err := r.pool.Exec(ctx, query, passwordHash, token)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Phone,
		&user.Role,
		&user.BusinessRole,
		&user.Verified,
		&user.ProfileImageURL,
		&user.ResetToken,
		&user.ResetTokenExpires,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) scanMany(rows pgx.Rows) ([]domain.User, error) {
	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}
