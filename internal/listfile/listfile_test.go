package listfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func writeListFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write list file: %v", err)
	}
	return path
}

func TestStore_LoadSet(t *testing.T) {
	store := NewStore(zap.NewNop())

	t.Run("missing file returns empty set", func(t *testing.T) {
		set, err := store.LoadSet(filepath.Join(t.TempDir(), "does-not-exist.txt"))
		assert.NoError(t, err)
		assert.Equal(t, 0, set.Len())
	})

	t.Run("skips comments and blank lines", func(t *testing.T) {
		path := writeListFile(t, "# friends to keep\nalice\n\n  bob  \n# trailing comment\ncarol\n")
		set, err := store.LoadSet(path)
		assert.NoError(t, err)
		assert.Equal(t, 3, set.Len())
		assert.True(t, set.Contains("alice"))
		assert.True(t, set.Contains("bob"))
		assert.True(t, set.Contains("carol"))
		assert.False(t, set.Contains("# friends to keep"))
	})

	t.Run("comparison is case-insensitive", func(t *testing.T) {
		path := writeListFile(t, "OctoCat\n")
		set, err := store.LoadSet(path)
		assert.NoError(t, err)
		assert.True(t, set.Contains("octocat"))
		assert.True(t, set.Contains("OCTOCAT"))
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		path := writeListFile(t, "alice\nAlice\nALICE\n")
		set, err := store.LoadSet(path)
		assert.NoError(t, err)
		assert.Equal(t, 1, set.Len())
	})
}
