package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mailvalid/mailvalid/pkg/pg"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgRepository struct {
	db DB
}

// NewPGRepository returns a Repository backed by the users table.
func NewPGRepository(db DB) Repository {
	return &pgRepository{db: db}
}

const (
	insertUser     = `INSERT INTO users (id, email, created_at) VALUES ($1, $2, $3)`
	selectUserByID = `SELECT id, email, created_at FROM users WHERE id = $1`
	selectByEmail  = `SELECT id, email, created_at FROM users WHERE email = $1`
)

func (r *pgRepository) Create(ctx context.Context, u User) error {
	if _, err := r.db.Exec(ctx, insertUser, u.ID, u.Email, u.CreatedAt); err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *pgRepository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	return r.get(ctx, selectUserByID, id)
}

func (r *pgRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	return r.get(ctx, selectByEmail, email)
}

func (r *pgRepository) get(ctx context.Context, query string, arg any) (User, error) {
	var u User
	if err := r.db.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Email, &u.CreatedAt); err != nil {
		if pg.IsNotFoundError(err) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}
