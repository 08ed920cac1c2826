package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLocalToRemote(t *testing.T) {
	root := filepath.FromSlash("/work/a")

	tests := []struct {
		name     string
		filePath string
		prefix   string
		want     string
	}{
		{
			name:     "top level file without prefix",
			filePath: "/work/a/b.txt",
			want:     "b.txt",
		},
		{
			name:     "nested file without prefix",
			filePath: "/work/a/c/d.txt",
			want:     "c/d.txt",
		},
		{
			name:     "nested file with prefix",
			filePath: "/work/a/c/d.txt",
			prefix:   "releases/1.0",
			want:     "releases/1.0/c/d.txt",
		},
		{
			name:     "prefix with surrounding slashes",
			filePath: "/work/a/c/d.txt",
			prefix:   "/releases/1.0/",
			want:     "releases/1.0/c/d.txt",
		},
		{
			name:     "root itself with prefix",
			filePath: "/work/a",
			prefix:   "artifact.jar",
			want:     "artifact.jar",
		},
		{
			name:     "root itself without prefix uses base name",
			filePath: "/work/a",
			want:     "a",
		},
		{
			name:     "uncleaned path",
			filePath: "/work/a/./c/../c/d.txt",
			want:     "c/d.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapLocalToRemote(root, filepath.FromSlash(tt.filePath), tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapLocalToRemote_OutsideRoot(t *testing.T) {
	for _, p := range []string{"/work/b.txt", "/work/ab/c.txt", "/other"} {
		t.Run(p, func(t *testing.T) {
			_, err := MapLocalToRemote(filepath.FromSlash("/work/a"), filepath.FromSlash(p), "")
			assert.True(t, IsInvalidPath(err))
		})
	}
}

func TestMapLocalToRemote_Injective(t *testing.T) {
	root := filepath.FromSlash("/r")
	files := []string{"/r/a", "/r/a.b", "/r/a/b", "/r/ab", "/r/a/b/c", "/r/b/a"}

	seen := map[string]string{}
	for _, f := range files {
		key, err := MapLocalToRemote(root, filepath.FromSlash(f), "p")
		require.NoError(t, err)
		if other, ok := seen[key]; ok {
			t.Fatalf("%s and %s both map to %s", other, f, key)
		}
		seen[key] = f
		assert.NotEqual(t, "/", key[:1])
	}
}

func TestJoinKey(t *testing.T) {
	assert.Equal(t, "a/b/c", JoinKey("a/", "/b/", "c"))
	assert.Equal(t, "b", JoinKey("", "b"))
	assert.Equal(t, "", JoinKey("", "/"))
}

func TestLocalPathForKey(t *testing.T) {
	root := filepath.FromSlash("/downloads")

	got, err := LocalPathForKey(root, "logs/2024-01-01/app.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/downloads/logs/2024-01-01/app.log"), got)

	got, err = LocalPathForKey(root, "/leading.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/downloads/leading.txt"), got)

	for _, bad := range []string{"", "/", "../etc/passwd", "logs/../../x"} {
		_, err := LocalPathForKey(root, bad)
		assert.True(t, IsInvalidPath(err), "key %q", bad)
	}
}

func TestIsDirectoryKey(t *testing.T) {
	assert.True(t, IsDirectoryKey("logs/"))
	assert.False(t, IsDirectoryKey("logs/app.log"))
}
