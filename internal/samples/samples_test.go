package samples

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPostsBareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	content := `[{"id": "a1", "text": "hello"}, {"id": "a2", "text": "world"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	posts := LoadPosts(path)

	require.Len(t, posts, 2)
	assert.Equal(t, "a1", posts[0].ID)
	assert.Equal(t, "world", posts[1].Text)
}

func TestLoadPostsLegacyExportFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	content := `[
		{"id": 1, "text": "Love this! 😍", "timestamp": "2024-01-15 10:30:00"},
		{"id": 2, "text": "Hate this! 😡", "timestamp": "2024-01-15 11:45:00"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	posts := LoadPosts(path)

	require.Len(t, posts, 2)
	assert.Equal(t, "1", posts[0].ID)
	assert.Equal(t, "Love this! 😍", posts[0].Text)
	assert.Equal(t, 10, posts[0].Timestamp.Hour())
	assert.Equal(t, "2", posts[1].ID)
	assert.NotEqual(t, FallbackPosts(), posts)
}

func TestLoadPostsWrappedObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	content := `{"posts": [{"id": "a1", "text": "hello"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	posts := LoadPosts(path)

	require.Len(t, posts, 1)
	assert.Equal(t, "a1", posts[0].ID)
}

func TestLoadPostsMissingFileFallsBack(t *testing.T) {
	posts := LoadPosts(filepath.Join(t.TempDir(), "does-not-exist.json"))

	assert.Equal(t, FallbackPosts(), posts)
	assert.NotEmpty(t, posts)
}

func TestLoadPostsInvalidJSONFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	assert.Equal(t, FallbackPosts(), LoadPosts(path))
}

func TestFallbackPostsHaveStableIDs(t *testing.T) {
	posts := FallbackPosts()

	require.Len(t, posts, 5)
	seen := make(map[string]bool, len(posts))
	for _, p := range posts {
		assert.NotEmpty(t, p.Text)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}
