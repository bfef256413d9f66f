package style

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStylesKeepText(t *testing.T) {
	DisableColor()

	tests := []struct {
		name  string
		style func(...string) string
	}{
		{"warning", WarningStyle.Render},
		{"critical", CriticalStyle.Render},
		{"conflict", ConflictEntryStyle.Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.style("devfile.yaml"), "devfile.yaml")
		})
	}

	assert.Contains(t, Bold("galaxy.yml"), "galaxy.yml")
}

func TestIndent(t *testing.T) {
	DisableColor()

	assert.Equal(t, "Hello", Indent("Hello", 0))
	assert.True(t, strings.HasPrefix(Indent("Hello", 2), "    Hello"))
}

func TestColorEnabled(t *testing.T) {
	t.Run("NO_COLOR disables styling", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, ColorEnabled(os.Stdout))
	})

	t.Run("regular files are not terminals", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "out")
		assert.NoError(t, err)
		defer f.Close()

		assert.False(t, IsTerminal(f))
		assert.False(t, ColorEnabled(f))
	})

	t.Run("nil file", func(t *testing.T) {
		assert.False(t, IsTerminal(nil))
	})
}
