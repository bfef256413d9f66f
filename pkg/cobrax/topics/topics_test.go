package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"option-dry-run.md":      {Data: []byte("Dry run help")},
		"option-no-overwrite.md": {Data: []byte("No overwrite help")},
		"bundles.md":             {Data: []byte("# Bundles\n\nWhat a bundle is")},
		"templates/vars.txt":     {Data: []byte("Template variables")},
		"notes.json":             {Data: []byte("ignored")},
	}
}

func TestScan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(topicFS())
		require.NoError(t, tm.Scan())

		assert.Equal(t, []string{"bundles", "option-dry-run", "option-no-overwrite", "vars"}, tm.ListTopics())
		topic, ok := tm.GetTopic("vars")
		require.True(t, ok)
		assert.Equal(t, "Template variables", topic.Content)
		assert.Equal(t, "templates/vars.txt", topic.FilePath)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(topicFS(), Options{Extensions: []string{".json"}})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("nil fs has no topics", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.Scan())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopic(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.Scan())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"bundles", "bundles", true},
		{"option-dry-run", "option-dry-run", true},
		{"dry-run", "option-dry-run", true},
		{"--dry-run", "option-dry-run", true},
		{"--no-overwrite", "option-no-overwrite", true},
		{"-v", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, ok)
			if ok {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestInitialize(t *testing.T) {
	rootCmd := &cobra.Command{Use: "stamp", Short: "test"}
	rootCmd.AddCommand(&cobra.Command{Use: "init", Run: func(*cobra.Command, []string) {}})

	tm, err := Initialize(rootCmd, topicFS())
	require.NoError(t, err)
	require.NotNil(t, tm)

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help [command or topic]", helpCmd.Use)

	t.Run("topic", func(t *testing.T) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"help", "dry-run"})
		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, "Dry run help", out.String())
	})

	t.Run("topic list", func(t *testing.T) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"help", "topics"})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "General topics:\n  bundles\n  vars\n")
		assert.Contains(t, out.String(), "Option topics:\n  --dry-run\n  --no-overwrite\n")
		assert.Contains(t, out.String(), "Use 'stamp help <topic>'")
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}
