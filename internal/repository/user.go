package repository

import (
	"context"
	"errors"
	"fmt"

	"user-api/internal/domain"
)

// ErrNotFound indicates that the targeted user row does not exist.
var ErrNotFound = errors.New("repository: user not found")

// UserField names a column of the users table that may appear in a
// Predicate or Patch.
type UserField string

const (
	UserFieldID       UserField = "id"
	UserFieldName     UserField = "name"
	UserFieldUsername UserField = "username"
	UserFieldEmail    UserField = "email"
	UserFieldPassword UserField = "password"
)

// Column returns the SQL column for the field, rejecting anything outside the
// users schema so values never reach a query as identifiers.
func (f UserField) Column() (string, error) {
	switch f {
	case UserFieldID, UserFieldName, UserFieldUsername, UserFieldEmail, UserFieldPassword:
		return string(f), nil
	}
	return "", fmt.Errorf("unknown user field %q", string(f))
}

// Predicate selects rows where Field equals Value.
type Predicate struct {
	Field UserField
	Value string
}

// Patch assigns Value to Field.
type Patch struct {
	Field UserField
	Value string
}

// IDEquals selects the user with the given id.
func IDEquals(id string) Predicate {
	return Predicate{Field: UserFieldID, Value: id}
}

// Set builds a Patch for field.
func Set(field UserField, value string) Patch {
	return Patch{Field: field, Value: value}
}

// FullOverwrite returns one Patch per writable field.
func FullOverwrite(fields domain.UserFields) []Patch {
	return []Patch{
		Set(UserFieldName, fields.Name),
		Set(UserFieldUsername, fields.Username),
		Set(UserFieldEmail, fields.Email),
		Set(UserFieldPassword, fields.Password),
	}
}

// UserRepository defines persistence operations for User entities.
//
// FindUnique, Update and Delete return ErrNotFound when no row matches.
type UserRepository interface {
	Init(ctx context.Context) error
	FindAll(ctx context.Context) ([]domain.User, error)
	FindUnique(ctx context.Context, where Predicate) (*domain.User, error)
	Create(ctx context.Context, fields domain.UserFields) (*domain.User, error)
	Update(ctx context.Context, where Predicate, patches ...Patch) (*domain.User, error)
	Delete(ctx context.Context, where Predicate) (*domain.User, error)
}
