package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-rsvp/internal/logger"
)

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "rsvp.db")

	bunDB, err := Open(context.Background(), path, logger.Discard())
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
	require.NoError(t, bunDB.Close())

	// Reopening an existing database must not fail or lose the schema.
	bunDB, err = Open(context.Background(), path, logger.Discard())
	require.NoError(t, err)
	defer bunDB.Close()

	var count int
	require.NoError(t, bunDB.NewRaw("SELECT count(*) FROM rsvp_responses").Scan(context.Background(), &count))
	assert.Equal(t, 0, count)
}

func TestOpenFileURICreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uri", "rsvp.db")

	bunDB, err := Open(context.Background(), "file:"+path+"?cache=shared", logger.Discard())
	require.NoError(t, err)
	defer bunDB.Close()

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

func TestIsMemory(t *testing.T) {
	assert.True(t, isMemory(":memory:"))
	assert.True(t, isMemory("file:abc?mode=memory&cache=shared"))
	assert.False(t, isMemory("/data/rsvp.db"))
	assert.False(t, isMemory("file:/data/rsvp.db?_pragma=busy_timeout(5000)"))
}

func TestFilePath(t *testing.T) {
	assert.Equal(t, "/data/rsvp.db", filePath("/data/rsvp.db"))
	assert.Equal(t, "/data/rsvp.db", filePath("file:/data/rsvp.db"))
	assert.Equal(t, "/data/rsvp.db", filePath("file:/data/rsvp.db?_pragma=busy_timeout(5000)"))
	assert.Equal(t, "rsvp.db", filePath("file:rsvp.db?cache=shared"))
}
