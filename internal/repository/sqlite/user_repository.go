package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

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
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

const userColumns = `id, name, username, email, password`

type UserRepository struct {
	db *sql.DB
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+userColumns+`
FROM users
ORDER BY created_at ASC, rowid ASC`)
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

func (r *UserRepository) FindUnique(ctx context.Context, where repository.Predicate) (*domain.User, error) {
	cond, err := where.Where("?")
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
SELECT `+userColumns+`
FROM users
WHERE `+cond+`
LIMIT 1`,
		where.Value,
	)
	return scanUser(row)
}

func (r *UserRepository) Create(ctx context.Context, fields domain.UserFields) (*domain.User, error) {
	now := time.Now().UTC()
	user := &domain.User{
		ID:       uuid.NewString(),
		Name:     fields.Name,
		Username: fields.Username,
		Email:    fields.Email,
		Password: fields.Password,
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, name, username, email, password, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Name,
		user.Username,
		user.Email,
		user.Password,
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, where repository.Predicate, patches ...repository.Patch) (*domain.User, error) {
	set, args, err := repository.Assignments(patches, func(int) string { return "?" })
	if err != nil {
		return nil, err
	}
	cond, err := where.Where("?")
	if err != nil {
		return nil, err
	}
	args = append(args, time.Now().UTC(), where.Value)

	row := r.db.QueryRowContext(ctx, `
UPDATE users
SET `+set+`, updated_at = ?
WHERE `+cond+`
RETURNING `+userColumns,
		args...,
	)
	return scanUser(row)
}

func (r *UserRepository) Delete(ctx context.Context, where repository.Predicate) (*domain.User, error) {
	cond, err := where.Where("?")
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
DELETE FROM users
WHERE `+cond+`
RETURNING `+userColumns,
		where.Value,
	)
	return scanUser(row)
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.Password,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}
