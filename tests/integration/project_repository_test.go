package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credvault/credvault-backend/internal/projects/domain"
	"github.com/credvault/credvault-backend/internal/projects/repository"
)

// setupTestPostgres creates a test PostgreSQL pool.
// Skips test if TEST_DB_DSN is not set. You can set TEST_DB_DSN directly,
// or use individual env vars:
//
//	TEST_DB_HOST, TEST_DB_PORT, TEST_DB_USER, TEST_DB_PASSWORD, TEST_DB_NAME
func setupTestPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		host := os.Getenv("TEST_DB_HOST")
		port := os.Getenv("TEST_DB_PORT")
		user := os.Getenv("TEST_DB_USER")
		password := os.Getenv("TEST_DB_PASSWORD")
		dbname := os.Getenv("TEST_DB_NAME")

		if host != "" && port != "" && user != "" && dbname != "" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
				host, port, user, password, dbname)
		} else {
			t.Skip("TEST_DB_DSN or TEST_DB_* environment variables not set, skipping PostgreSQL integration test")
		}
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS projects (
    id                 TEXT PRIMARY KEY,
    owner_id           TEXT NOT NULL,
    project_name       TEXT NOT NULL,
    clone_link         TEXT NOT NULL,
    authorization_pass TEXT NOT NULL,
    frontend_env       TEXT NOT NULL DEFAULT '',
    backend_env        TEXT NOT NULL DEFAULT '',
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);`)
	require.NoError(t, err)

	return pool
}

func cleanupOwner(t *testing.T, pool *pgxpool.Pool, ownerID string) {
	t.Helper()
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM projects WHERE owner_id = $1`, ownerID)
	})
}

func testInput(name string) domain.ProjectInput {
	return domain.ProjectInput{
		ProjectName:       name,
		CloneLink:         "https://x/" + name + ".git",
		AuthorizationPass: "s3cret",
	}
}

func TestRepository_CreateAndList(t *testing.T) {
	pool := setupTestPostgres(t)
	repo := repository.NewProjectRepository(pool)
	ctx := context.Background()

	ownerA := "it-owner-a-" + t.Name()
	ownerB := "it-owner-b-" + t.Name()
	cleanupOwner(t, pool, ownerA)
	cleanupOwner(t, pool, ownerB)

	first, err := repo.Create(ctx, ownerA, testInput("first"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, ownerA, first.OwnerID)
	assert.Equal(t, "", first.FrontendEnv)
	assert.Equal(t, "", first.BackendEnv)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := repo.Create(ctx, ownerA, testInput("second"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, ownerB, testInput("other"))
	require.NoError(t, err)

	items, err := repo.List(ctx, ownerA)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID, "newest first")
	assert.Equal(t, first.ID, items[1].ID)

	items, err = repo.List(ctx, ownerB)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRepository_UpdateOwnershipScoped(t *testing.T) {
	pool := setupTestPostgres(t)
	repo := repository.NewProjectRepository(pool)
	ctx := context.Background()

	ownerA := "it-owner-a-" + t.Name()
	ownerB := "it-owner-b-" + t.Name()
	cleanupOwner(t, pool, ownerA)

	p, err := repo.Create(ctx, ownerA, testInput("mine"))
	require.NoError(t, err)

	// foreign owner and unknown id are the same error
	_, err = repo.Update(ctx, ownerB, p.ID, testInput("hijack"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.Update(ctx, ownerA, "no-such-id", testInput("ghost"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in := testInput("renamed")
	in.FrontendEnv = "KEY=v"
	updated, err := repo.Update(ctx, ownerA, p.ID, in)
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "renamed", updated.ProjectName)
	assert.Equal(t, "KEY=v", updated.FrontendEnv)
	assert.True(t, !updated.UpdatedAt.Before(p.UpdatedAt))
	assert.Equal(t, p.CreatedAt, updated.CreatedAt, "created_at immutable")
}

func TestRepository_Delete(t *testing.T) {
	pool := setupTestPostgres(t)
	repo := repository.NewProjectRepository(pool)
	ctx := context.Background()

	ownerA := "it-owner-a-" + t.Name()
	cleanupOwner(t, pool, ownerA)

	p, err := repo.Create(ctx, ownerA, testInput("doomed"))
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(ctx, "someone-else", p.ID), domain.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, ownerA, p.ID))
	assert.ErrorIs(t, repo.Delete(ctx, ownerA, p.ID), domain.ErrNotFound)

	items, err := repo.List(ctx, ownerA)
	require.NoError(t, err)
	assert.Empty(t, items)
}
