//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
	repo "github.com/jj-carrillo-dev/snippet-manager-backend/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "snippets_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/snippets_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func createUser(t *testing.T, ur *repo.UserRepository, email, username string) model.User {
	t.Helper()
	now := time.Now()
	user, err := ur.Create(context.Background(), model.User{
		GUID:         uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	return user
}

func TestUserRepository_Integration(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	user := createUser(t, ur, "anna@example.com", "anna")
	require.NotZero(t, user.ID)

	t.Run("get by email or username", func(t *testing.T) {
		byEmail, err := ur.GetByIdentifier(ctx, "anna@example.com")
		require.NoError(t, err)
		require.Equal(t, user.ID, byEmail.ID)

		byUsername, err := ur.GetByIdentifier(ctx, "anna")
		require.NoError(t, err)
		require.Equal(t, user.ID, byUsername.ID)

		_, err = ur.GetByIdentifier(ctx, "nobody")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := ur.Create(ctx, model.User{
			GUID:         uuid.New(),
			Email:        "anna@example.com",
			Username:     "anna2",
			PasswordHash: "x",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		})
		require.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("update and delete", func(t *testing.T) {
		victim := createUser(t, ur, "victim@example.com", "victim")

		victim.Username = "renamed"
		victim.UpdatedAt = time.Now()
		updated, err := ur.Update(ctx, victim)
		require.NoError(t, err)
		require.Equal(t, "renamed", updated.Username)

		require.NoError(t, ur.Delete(ctx, victim.ID))
		require.ErrorIs(t, ur.Delete(ctx, victim.ID), model.ErrNotFound)

		_, err = ur.GetByID(ctx, victim.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestCategoryRepository_Integration(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	cr := repo.NewCategoryRepository(conn)

	anna := createUser(t, ur, "cat-anna@example.com", "cat-anna")
	bob := createUser(t, ur, "cat-bob@example.com", "cat-bob")

	now := time.Now()
	annaScripts, err := cr.Create(ctx, model.Category{
		Name: "Scripts", UserID: anna.ID, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	t.Run("name unique per owner only", func(t *testing.T) {
		_, err := cr.Create(ctx, model.Category{
			Name: "Scripts", UserID: bob.ID, CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)

		_, err = cr.Create(ctx, model.Category{
			Name: "Scripts", UserID: anna.ID, CreatedAt: now, UpdatedAt: now,
		})
		require.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("reads are owner scoped", func(t *testing.T) {
		got, err := cr.GetByIDAndOwner(ctx, annaScripts.ID, anna.ID)
		require.NoError(t, err)
		require.Equal(t, "Scripts", got.Name)

		_, err = cr.GetByIDAndOwner(ctx, annaScripts.ID, bob.ID)
		require.ErrorIs(t, err, model.ErrNotFound)

		_, err = cr.GetByNameAndOwner(ctx, "Scripts", anna.ID)
		require.NoError(t, err)

		list, err := cr.GetByOwner(ctx, anna.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("delete", func(t *testing.T) {
		doomed, err := cr.Create(ctx, model.Category{
			Name: "Doomed", UserID: anna.ID, CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)
		require.NoError(t, cr.Delete(ctx, doomed.ID))
		require.ErrorIs(t, cr.Delete(ctx, doomed.ID), model.ErrNotFound)
	})
}

func TestSnippetRepository_Integration(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	cr := repo.NewCategoryRepository(conn)
	sr := repo.NewSnippetRepository(conn)

	anna := createUser(t, ur, "snip-anna@example.com", "snip-anna")
	bob := createUser(t, ur, "snip-bob@example.com", "snip-bob")

	now := time.Now()
	category, err := cr.Create(ctx, model.Category{
		Name: "Go", UserID: anna.ID, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	snippet, err := sr.Create(ctx, model.Snippet{
		Title:      "hello",
		Content:    "fmt.Println(\"hello\")",
		Language:   "go",
		UserID:     anna.ID,
		CategoryID: category.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)
	require.NotZero(t, snippet.ID)

	t.Run("reads are owner scoped", func(t *testing.T) {
		got, err := sr.GetByIDAndOwner(ctx, snippet.ID, anna.ID)
		require.NoError(t, err)
		require.Equal(t, "hello", got.Title)

		_, err = sr.GetByIDAndOwner(ctx, snippet.ID, bob.ID)
		require.ErrorIs(t, err, model.ErrNotFound)

		list, err := sr.GetByOwner(ctx, anna.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)

		empty, err := sr.GetByOwner(ctx, bob.ID)
		require.NoError(t, err)
		require.Empty(t, empty)
	})

	t.Run("update and delete", func(t *testing.T) {
		snippet.Title = "hello world"
		snippet.UpdatedAt = time.Now()
		updated, err := sr.Update(ctx, snippet)
		require.NoError(t, err)
		require.Equal(t, "hello world", updated.Title)

		require.NoError(t, sr.Delete(ctx, snippet.ID))
		require.ErrorIs(t, sr.Delete(ctx, snippet.ID), model.ErrNotFound)
	})
}
