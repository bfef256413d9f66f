package templar

import (
	"testing"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		data     map[string]interface{}
		expected string
	}{
		{
			name:     "plain text passes through",
			content:  "no templating here\n",
			expected: "no templating here\n",
		},
		{
			name:     "field lookup",
			content:  "namespace: {{ .namespace }}",
			data:     map[string]interface{}{"namespace": "acme"},
			expected: "namespace: acme",
		},
		{
			name:     "toJson",
			content:  `"recommendations": {{ .recommended_extensions | toJson }}`,
			data:     map[string]interface{}{"recommended_extensions": []interface{}{"redhat.ansible", "redhat.vscode-redhat-account"}},
			expected: `"recommendations": ["redhat.ansible","redhat.vscode-redhat-account"]`,
		},
		{
			name:     "toYaml",
			content:  "{{ toYaml .deps }}",
			data:     map[string]interface{}{"deps": map[string]interface{}{"ansible.utils": "*"}},
			expected: `ansible.utils: '*'`,
		},
		{
			name:     "replace and upper",
			content:  `{{ .name | replace "_" "-" | upper }}`,
			data:     map[string]interface{}{"name": "hello_world"},
			expected: "HELLO-WORLD",
		},
		{
			name:     "default on empty",
			content:  `{{ .image | default "quay.io/fedora/fedora:41" }}`,
			data:     map[string]interface{}{"image": ""},
			expected: "quay.io/fedora/fedora:41",
		},
	}

	tr := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Render(tt.name, tt.content, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRenderErrors(t *testing.T) {
	tr := New()

	t.Run("missing key", func(t *testing.T) {
		_, err := tr.Render("devfile.yaml.tmpl", "name: {{ .dev_file_name }}", map[string]interface{}{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRender))
		assert.Equal(t, "devfile.yaml.tmpl", errors.GetErrorDetails(err)["path"])
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := tr.Render("broken", "{{ .name ", nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRender))
	})
}

func TestRenderDevfileName(t *testing.T) {
	tr := New()
	data := map[string]interface{}{"dev_file_name": "acme.demo-1a2b3c4d"}

	got, err := tr.Render("devfile.yaml.tmpl", "name: {{ .dev_file_name }}", data)
	require.NoError(t, err)
	assert.Equal(t, "name: acme.demo-1a2b3c4d", got)

	// Without the leading dot the name is looked up as a function.
	_, err = tr.Render("devfile.yaml.tmpl", "name: {{ dev_file_name }}", data)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRender))
}
