package migrations

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	for {
		up, _, err := src.ReadUp(version)
		require.NoError(t, err, "missing up migration for %d", version)
		body, err := io.ReadAll(up)
		require.NoError(t, err)
		_ = up.Close()
		assert.NotEmpty(t, body)

		down, _, err := src.ReadDown(version)
		require.NoError(t, err, "missing down migration for %d", version)
		_ = down.Close()

		next, err := src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		require.NoError(t, err)
		version = next
	}
}

func TestInitMigrationCreatesAllTables(t *testing.T) {
	body, err := files.ReadFile("sql/000001_init.up.sql")
	require.NoError(t, err)

	for _, table := range []string{"banks", "customers", "assets", "token_mints", "loans"} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

func TestInsertionOrderMigrationAddsSequences(t *testing.T) {
	body, err := files.ReadFile("sql/000002_insertion_order.up.sql")
	require.NoError(t, err)

	for _, table := range []string{"token_mints", "loans"} {
		assert.Contains(t, string(body), "ALTER TABLE "+table+" ADD COLUMN IF NOT EXISTS seq BIGSERIAL")
	}
}
