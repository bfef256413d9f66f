package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/src/acme", filepath.Join(home, "src", "acme")},
		{"~other/src", "~other/src"},
		{"/abs/path", "/abs/path"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STAMP_TEST_ROOT", "/srv/projects")

	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"absolute", "/work/acme/../acme/demo/", "/work/acme/demo"},
		{"relative", "demo", filepath.Join(cwd, "demo")},
		{"empty is cwd", "", cwd},
		{"home", "~/demo", filepath.Join(home, "demo")},
		{"env var", "$STAMP_TEST_ROOT/demo", "/srv/projects/demo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectionRoot(t *testing.T) {
	assert.Equal(t, "/src/collections/ansible_collections/acme/widgets",
		CollectionRoot("/src/collections/ansible_collections", "acme", "widgets"))
	assert.Equal(t, "/src/widgets", CollectionRoot("/src/widgets", "acme", "widgets"))
	assert.Equal(t, "/src/ansible_collections", CollectionRoot("/src/ansible_collections", "acme", "widgets"))
}

func TestLastTwo(t *testing.T) {
	assert.Equal(t, "acme.demo", LastTwo("/src/acme/demo"))
	assert.Equal(t, "demo", LastTwo("/demo"))
	assert.Equal(t, "acme.demo", LastTwo("/src/acme/demo/"))
}
