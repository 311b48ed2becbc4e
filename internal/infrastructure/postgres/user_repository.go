package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pureherbal/storefront-api/internal/domain/entity"
	"github.com/pureherbal/storefront-api/internal/domain/repository"
)

// UserRepository stores each user as a single row; addresses and preferences
// are jsonb columns, so every mutation is one per-document write and the
// database's row-level atomicity is the only concurrency control. Two racing
// address mutations for the same user can lose one update; that window is an
// accepted limitation of the contract.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, name, email, password_hash, phone, avatar_url, preferences, addresses, created_at, updated_at`

func (r *UserRepository) Create(u *entity.User) error {
	ctx := context.Background()
	if u.Preferences == nil {
		u.Preferences = map[string]any{}
	}
	if u.Addresses == nil {
		u.Addresses = []entity.Address{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, phone, avatar_url, preferences, addresses)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, u.Name, u.Email, u.PasswordHash, u.Phone, u.AvatarURL, u.Preferences, u.Addresses)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	return r.getBy(`WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	return r.getBy(`WHERE email = $1`, email)
}

func (r *UserRepository) getBy(where string, arg any) (*entity.User, error) {
	ctx := context.Background()
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users `+where, arg)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.AvatarURL,
		&u.Preferences, &u.Addresses, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if u.Addresses == nil {
		u.Addresses = []entity.Address{}
	}
	return u, nil
}

// Update persists the mutable profile fields and the whole address document.
// Email is immutable after registration and is deliberately not written.
func (r *UserRepository) Update(u *entity.User) error {
	ctx := context.Background()
	u.UpdatedAt = time.Now()
	if u.Addresses == nil {
		u.Addresses = []entity.Address{}
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, phone = $2, avatar_url = $3, preferences = $4, addresses = $5, updated_at = $6
		WHERE id = $7
	`, u.Name, u.Phone, u.AvatarURL, u.Preferences, u.Addresses, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(id, passwordHash string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2
	`, passwordHash, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
