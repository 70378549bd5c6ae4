package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-api/internal/domain"
	"user-api/internal/repository"
)

type userRepoStub struct {
	calls   int
	where   repository.Predicate
	patches []repository.Patch
	fields  domain.UserFields

	user  *domain.User
	users []domain.User
	err   error
}

func (s *userRepoStub) Init(context.Context) error { return nil }

func (s *userRepoStub) FindAll(context.Context) ([]domain.User, error) {
	s.calls++
	return s.users, s.err
}

func (s *userRepoStub) FindUnique(_ context.Context, where repository.Predicate) (*domain.User, error) {
	s.calls++
	s.where = where
	return s.user, s.err
}

func (s *userRepoStub) Create(_ context.Context, fields domain.UserFields) (*domain.User, error) {
	s.calls++
	s.fields = fields
	return s.user, s.err
}

func (s *userRepoStub) Update(_ context.Context, where repository.Predicate, patches ...repository.Patch) (*domain.User, error) {
	s.calls++
	s.where = where
	s.patches = patches
	return s.user, s.err
}

func (s *userRepoStub) Delete(_ context.Context, where repository.Predicate) (*domain.User, error) {
	s.calls++
	s.where = where
	return s.user, s.err
}

func TestGetQueriesByIDUnchanged(t *testing.T) {
	repo := &userRepoStub{user: &domain.User{ID: "u1", Name: "Ann"}}
	svc := NewUserService(repo)

	user, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, repository.IDEquals("u1"), repo.where)
	assert.Equal(t, 1, repo.calls)
}

func TestIDsArePassedThroughVerbatim(t *testing.T) {
	repo := &userRepoStub{err: repository.ErrNotFound}
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Get(ctx, " u1 ")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, repository.IDEquals(" u1 "), repo.where)

	_, err = svc.Update(ctx, " ", domain.UserFields{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, repository.IDEquals(" "), repo.where)

	_, err = svc.Delete(ctx, "\t")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, repository.IDEquals("\t"), repo.where)

	assert.Equal(t, 3, repo.calls)
}

func TestUpdatePatchesEveryField(t *testing.T) {
	repo := &userRepoStub{user: &domain.User{ID: "u1"}}
	svc := NewUserService(repo)

	fields := domain.UserFields{Name: "Bea", Username: "bea2", Email: "bea@y.com", Password: "q"}
	_, err := svc.Update(context.Background(), "u1", fields)
	require.NoError(t, err)

	assert.Equal(t, repository.IDEquals("u1"), repo.where)
	assert.ElementsMatch(t, []repository.Patch{
		repository.Set(repository.UserFieldName, "Bea"),
		repository.Set(repository.UserFieldUsername, "bea2"),
		repository.Set(repository.UserFieldEmail, "bea@y.com"),
		repository.Set(repository.UserFieldPassword, "q"),
	}, repo.patches)
	assert.Equal(t, 1, repo.calls)
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	boom := errors.New("connection refused")
	ctx := context.Background()

	repo := &userRepoStub{err: repository.ErrNotFound}
	_, err := NewUserService(repo).Delete(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	repo = &userRepoStub{err: boom}
	_, err = NewUserService(repo).List(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = NewUserService(repo).Create(ctx, domain.UserFields{Name: "Ann"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Ann", repo.fields.Name)
}
