package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-api/internal/domain"
	"user-api/internal/repository"
)

// TestUserRepositoryIntegration runs the CRUD cycle against a live database.
func TestUserRepositoryIntegration(t *testing.T) {
	dbURL := os.Getenv("USERAPI_TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("set USERAPI_TEST_DATABASE_URL to run this integration test")
	}

	ctx := context.Background()
	pool, err := Open(ctx, dbURL)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewUserRepository(pool)
	require.NoError(t, repo.Init(ctx))

	before, err := repo.FindAll(ctx)
	require.NoError(t, err)

	created, err := repo.Create(ctx, domain.UserFields{Name: "Ann", Username: "ann1", Email: "ann@x.com", Password: "p"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	after, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	updated, err := repo.Update(ctx, repository.IDEquals(created.ID), repository.FullOverwrite(domain.UserFields{
		Name: "Bea", Username: "bea2", Email: "bea@y.com", Password: "q",
	})...)
	require.NoError(t, err)
	assert.Equal(t, "Bea", updated.Name)
	assert.Equal(t, "q", updated.Password)

	deleted, err := repo.Delete(ctx, repository.IDEquals(created.ID))
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = repo.FindUnique(ctx, repository.IDEquals(created.ID))
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.Delete(ctx, repository.IDEquals(created.ID))
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.Update(ctx, repository.IDEquals(created.ID), repository.FullOverwrite(domain.UserFields{Name: "x"})...)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
