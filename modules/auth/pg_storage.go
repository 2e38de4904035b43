package auth

import (
	"context"
	"embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/eapd/pkg/pg"
)

// Migrations holds the goose migrations for PGStorage. Apply them with
// pg.Migrate(ctx, pool, auth.Migrations, auth.MigrationsDir, cfg, log).
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations.
const MigrationsDir = "migrations"

const userColumns = `id, username, password_hash, email, name, position, phone, state, created_at, updated_at`

var _ Storage = (*PGStorage)(nil)

// PGStorage stores users in PostgreSQL.
type PGStorage struct {
	db *pgxpool.Pool
}

func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	return &PGStorage{db: pool}
}

func (s *PGStorage) CreateUser(ctx context.Context, user *User) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID, user.Username, user.PasswordHash, user.Email, user.Name,
		user.Position, user.Phone, user.State, user.CreatedAt, user.UpdatedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrUserExists
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *PGStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *PGStorage) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(username) = $1`, normalizeUsername(username))
	return scanUser(row)
}

func (s *PGStorage) UpdateUser(ctx context.Context, user *User) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET email = $2, name = $3, position = $4, phone = $5, state = $6, updated_at = $7
		 WHERE id = $1`,
		user.ID, user.Email, user.Name, user.Position, user.Phone, user.State, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Name,
		&u.Position, &u.Phone, &u.State, &u.CreatedAt, &u.UpdatedAt)
	if pg.IsNotFoundError(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &u, nil
}
