package templar

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/logging"
	"gopkg.in/yaml.v3"
)

// Templar renders template text against template data.
type Templar struct {
	funcs template.FuncMap
}

// New returns a Templar with the standard function set.
func New() *Templar {
	return &Templar{funcs: FuncMap()}
}

// FuncMap is the set of helpers available to every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"toJson":  toJSON,
		"toYaml":  toYAML,
		"lower":   strings.ToLower,
		"upper":   strings.ToUpper,
		"replace": replace,
		"default": defaultValue,
	}
}

// Render executes content as a template. name is only used in error messages.
// Referencing a key missing from data is an error.
func (t *Templar) Render(name, content string, data map[string]interface{}) (string, error) {
	logger := logging.GetLogger("templar")

	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(t.funcs).
		Parse(content)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateRender, "failed to parse template %s", name).
			WithPath(name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateRender, "failed to render template %s", name).
			WithPath(name)
	}

	logger.Trace().Str("template", name).Int("bytes", buf.Len()).Msg("rendered")
	return buf.String(), nil
}

func toJSON(v interface{}) (string, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// toYAML drops the trailing newline so the helper can be used inline.
func toYAML(v interface{}) (string, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

// replace is strings.ReplaceAll with the subject last, so it pipes:
// {{ .name | replace "_" "-" }}
func replace(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}

// defaultValue returns def when v is nil or an empty string.
func defaultValue(def, v interface{}) interface{} {
	if v == nil {
		return def
	}
	if s, ok := v.(string); ok && s == "" {
		return def
	}
	return v
}
