package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*credentialRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "storefront.db")
	repo, err := NewCredentialRepository(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo.(*credentialRepository), path
}

func TestCredentialRepository_EmptyLoad(t *testing.T) {
	repo, _ := newTestRepo(t)

	cred, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestCredentialRepository_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, entity.Credential{AccessToken: "a1", RefreshToken: "r1"}))
	require.NoError(t, repo.Save(ctx, entity.Credential{AccessToken: "a2", RefreshToken: "r2"}))

	cred, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.Credential{AccessToken: "a2", RefreshToken: "r2"}, cred)

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))

	cred, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, cred)

	var n int
	require.NoError(t, repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM local_storage`).Scan(&n))
	assert.Zero(t, n)
}

func TestCredentialRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestRepo(t)
	require.NoError(t, repo.Save(ctx, entity.Credential{AccessToken: "a", RefreshToken: "r"}))
	require.NoError(t, repo.Close())

	reopened, err := NewCredentialRepository(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	cred, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", cred.AccessToken)
	assert.Equal(t, "r", cred.RefreshToken)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	var keys []string
	rows, err := db.QueryContext(ctx, `SELECT key FROM local_storage ORDER BY key`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var k string
		require.NoError(t, rows.Scan(&k))
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"access_token", "refresh_token"}, keys)
}
