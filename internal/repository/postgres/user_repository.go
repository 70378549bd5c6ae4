package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"user-api/internal/domain"
	"user-api/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	username TEXT NOT NULL,
	email TEXT NOT NULL,
	password TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const userColumns = `id, name, username, email, password`

// UserRepository provides Postgres-backed persistence for users.
type UserRepository struct {
	pool *pgxpool.Pool
}

// Ensure UserRepository satisfies the repository.UserRepository interface at compile time.
var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository wraps an open pool.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Init creates the users table when missing.
func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

// FindAll returns every user in creation order.
func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC, id ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// FindUnique fetches the first user matching where.
func (r *UserRepository) FindUnique(ctx context.Context, where repository.Predicate) (*domain.User, error) {
	cond, err := where.Where("$1")
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + cond + ` LIMIT 1`
	return scanUser(r.pool.QueryRow(ctx, query, where.Value))
}

// Create inserts a new user row with a freshly assigned id.
func (r *UserRepository) Create(ctx context.Context, fields domain.UserFields) (*domain.User, error) {
	const query = `
		INSERT INTO users (id, name, username, email, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns
	row := r.pool.QueryRow(ctx, query, uuid.NewString(), fields.Name, fields.Username, fields.Email, fields.Password)
	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Update applies patches to the row matching where and returns the result.
func (r *UserRepository) Update(ctx context.Context, where repository.Predicate, patches ...repository.Patch) (*domain.User, error) {
	query, args, err := updateQuery(where, patches)
	if err != nil {
		return nil, err
	}
	return scanUser(r.pool.QueryRow(ctx, query, args...))
}

// updateQuery numbers the SET arguments first and binds the predicate last.
func updateQuery(where repository.Predicate, patches []repository.Patch) (string, []any, error) {
	set, args, err := repository.Assignments(patches, func(n int) string { return fmt.Sprintf("$%d", n) })
	if err != nil {
		return "", nil, err
	}
	cond, err := where.Where(fmt.Sprintf("$%d", len(args)+1))
	if err != nil {
		return "", nil, err
	}
	args = append(args, where.Value)

	query := `UPDATE users SET ` + set + `, updated_at = NOW() WHERE ` + cond + ` RETURNING ` + userColumns
	return query, args, nil
}

// Delete removes the row matching where and returns it.
func (r *UserRepository) Delete(ctx context.Context, where repository.Predicate) (*domain.User, error) {
	cond, err := where.Where("$1")
	if err != nil {
		return nil, err
	}
	query := `DELETE FROM users WHERE ` + cond + ` RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, query, where.Value))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Name, &user.Username, &user.Email, &user.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}
