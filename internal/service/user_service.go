package service

import (
	"context"

	"user-api/internal/domain"
	"user-api/internal/repository"
)

// UserService describes user lifecycle operations. Each call performs a
// single repository round trip. Ids are opaque and passed through as given.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, fields domain.UserFields) (*domain.User, error)
	Update(ctx context.Context, id string, fields domain.UserFields) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindUnique(ctx, repository.IDEquals(id))
}

func (s *userService) Create(ctx context.Context, fields domain.UserFields) (*domain.User, error) {
	return s.users.Create(ctx, fields)
}

// Update overwrites every field of the user; there is no partial mode.
func (s *userService) Update(ctx context.Context, id string, fields domain.UserFields) (*domain.User, error) {
	return s.users.Update(ctx, repository.IDEquals(id), repository.FullOverwrite(fields)...)
}

func (s *userService) Delete(ctx context.Context, id string) (*domain.User, error) {
	return s.users.Delete(ctx, repository.IDEquals(id))
}
