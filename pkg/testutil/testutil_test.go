package testutil

import (
	"io/fs"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironments(t *testing.T) {
	for _, envType := range []EnvType{EnvMemoryOnly, EnvIsolated} {
		env := NewTestEnvironment(t, envType)

		env.WriteFile("a/b.txt", "hello")
		env.Mkdir("empty")

		assert.True(t, env.Exists("a/b.txt"))
		assert.True(t, env.IsDir("a"))
		assert.True(t, env.IsDir("empty"))
		assert.False(t, env.Exists("missing"))
		assert.Equal(t, "hello", env.ReadFile("a/b.txt"))
	}
}

func TestRecordingOutput(t *testing.T) {
	out := NewRecordingOutput()
	out.Warning("x already exists")
	out.Debug("walking")
	out.Critical("boom")

	assert.Equal(t, []string{"x already exists"}, out.ByLevel("warning"))
	assert.True(t, out.Contains("critical", "boom"))
	assert.True(t, out.Exited)
}

func TestBundleFS(t *testing.T) {
	fsys := BundleFS(map[string]string{
		"common/devfile/devfile.yaml.tmpl": "name: x",
		"common/empty/":                    "",
	})

	data, err := fs.ReadFile(fsys, "common/devfile/devfile.yaml.tmpl")
	require.NoError(t, err)
	assert.Equal(t, "name: x", string(data))

	info, err := fs.Stat(fsys, "common/empty")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = fs.Stat(fsys, "common/devfile")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestQuietLogs(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	QuietLogs()

	assert.Equal(t, zerolog.Disabled, zerolog.GlobalLevel())
	assert.Equal(t, zerolog.Disabled, log.Logger.GetLevel())
}
