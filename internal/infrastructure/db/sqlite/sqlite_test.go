package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/datathon/handouts-api/internal/core/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Connect(context.Background(), Config{Path: path}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() { _ = Close(db) })
	return db
}

func createUser(t *testing.T, repo *UserRepository, name string) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{Username: name, PasswordHash: "hash"})
	require.NoError(t, err)
	return u
}

func TestConnect_EmptyPath(t *testing.T) {
	_, err := Connect(context.Background(), Config{}, zerolog.Nop())
	assert.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, Ping(context.Background(), db))
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	created := createUser(t, repo, "alice")
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "alice", created.Username)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", byID.PasswordHash)

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	createUser(t, repo, "bob")

	_, err := repo.Create(context.Background(), &domain.User{Username: "bob", PasswordHash: "other"})
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPostRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	users, posts := NewUserRepository(db), NewPostRepository(db)
	ctx := context.Background()
	author := createUser(t, users, "alice")

	created, err := posts.Create(ctx, &domain.Post{Title: "Hello", AuthorID: author.ID})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.False(t, created.Requested)

	list, err := posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Hello", list[0].Title)
	assert.False(t, list[0].Requested)
}

func TestPostRepository_ForeignKeyEnforced(t *testing.T) {
	posts := NewPostRepository(setupTestDB(t))

	_, err := posts.Create(context.Background(), &domain.Post{Title: "Orphan", AuthorID: 99})
	assert.ErrorIs(t, err, domain.ErrAuthorNotFound)

	list, err := posts.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPostRepository_MarkRequested(t *testing.T) {
	db := setupTestDB(t)
	users, posts := NewUserRepository(db), NewPostRepository(db)
	ctx := context.Background()
	author := createUser(t, users, "alice")
	created, err := posts.Create(ctx, &domain.Post{Title: "Hello", AuthorID: author.ID})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		p, err := posts.MarkRequested(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, p.Requested)
	}

	stored, err := posts.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Requested)

	_, err = posts.MarkRequested(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostRepository_ListByAuthor(t *testing.T) {
	db := setupTestDB(t)
	users, posts := NewUserRepository(db), NewPostRepository(db)
	ctx := context.Background()
	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	for _, p := range []domain.Post{
		{Title: "a1", AuthorID: alice.ID},
		{Title: "b1", AuthorID: bob.ID},
		{Title: "a2", AuthorID: alice.ID},
	} {
		_, err := posts.Create(ctx, &p)
		require.NoError(t, err)
	}

	mine, err := posts.ListByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "a1", mine[0].Title)
	assert.Equal(t, "a2", mine[1].Title)

	none, err := posts.ListByAuthor(ctx, 77)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPostRepository_ConcurrentCreates(t *testing.T) {
	db := setupTestDB(t)
	users, posts := NewUserRepository(db), NewPostRepository(db)
	author := createUser(t, users, "alice")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := posts.Create(context.Background(), &domain.Post{Title: "parallel", AuthorID: author.ID})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := posts.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 10)
}
