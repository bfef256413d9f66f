package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "state", "stamp.log")
			t.Setenv(LogFileEnv, logPath)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestSetupFileOnlyWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "stamp.log")
	t.Setenv(LogFileEnv, logPath)

	SetupFileOnly(2)
	logger := GetLogger("test-component")
	logger.Debug().Msg("walk started")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"component":"test-component"`)
	assert.Contains(t, string(content), "walk started")
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		t.Setenv(LogFileEnv, "/custom/stamp.log")
		assert.Equal(t, "/custom/stamp.log", getLogFilePath())
	})

	t.Run("xdg state home", func(t *testing.T) {
		stateDir := t.TempDir()
		// registered first so it runs after the env is restored
		t.Cleanup(xdg.Reload)
		t.Setenv(LogFileEnv, "")
		t.Setenv("XDG_STATE_HOME", stateDir)
		xdg.Reload()

		got := getLogFilePath()
		assert.True(t, filepath.IsAbs(got))
		assert.True(t, strings.HasPrefix(got, stateDir))
		assert.Equal(t, filepath.Join("stamp", "stamp.log"), strings.TrimPrefix(got, stateDir+string(filepath.Separator)))
	})
}

func TestLogOperationStart(t *testing.T) {
	done := LogOperationStart(GetLogger("test"), "collect")
	require.NotNil(t, done)
	done()
}
