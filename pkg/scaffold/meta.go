package scaffold

import (
	stderrors "errors"
	"io/fs"
	"path"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/logging"
	"gopkg.in/yaml.v3"
)

// Renderer renders template text against template data
type Renderer interface {
	Render(name, content string, data map[string]interface{}) (string, error)
}

// MetaEntry is one extra template data field declared by a bundle.
type MetaEntry struct {
	Value    interface{} `yaml:"value"`
	Template bool        `yaml:"template"`
}

// BundleMetadata maps consumer ids to the fields they add.
type BundleMetadata map[string]map[string]MetaEntry

// MetadataLoader reads the optional metadata file at a bundle's root and
// merges the fields declared for a consumer into template data.
type MetadataLoader struct {
	Bundles  fs.FS
	MetaFile string
	Renderer Renderer
}

// Load returns data extended with the fields the bundle at root declares for
// consumerID. data itself is never modified. A missing metadata file or an
// unknown consumer leaves the data unchanged.
func (l *MetadataLoader) Load(root, consumerID string, data Data) (Data, error) {
	logger := logging.GetLogger("scaffold.meta")
	out := data.Clone()

	metaPath := path.Join(root, l.MetaFile)
	raw, err := fs.ReadFile(l.Bundles, metaPath)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("bundle", root).Msg("No metadata file, using template data as is")
			return out, nil
		}
		return nil, errors.Wrapf(err, errors.ErrBundleRead, "failed to read %s", metaPath).WithPath(metaPath)
	}

	var meta BundleMetadata
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return nil, errors.Wrapf(err, errors.ErrMetadataParse, "malformed metadata in %s", metaPath).WithPath(metaPath)
	}

	fields, ok := meta[consumerID]
	if !ok {
		logger.Debug().Str("bundle", root).Str("consumer", consumerID).Msg("No metadata for consumer")
		return out, nil
	}

	for key, entry := range fields {
		if !entry.Template {
			out[key] = cloneValue(entry.Value)
			continue
		}
		value, err := l.renderValue(metaPath+":"+key, entry.Value, data)
		if err != nil {
			return nil, err
		}
		out[key] = value
	}

	logger.Debug().Str("bundle", root).Str("consumer", consumerID).Int("fields", len(fields)).Msg("Loaded metadata")
	return out, nil
}

// renderValue serializes value to YAML, renders it as a template and parses
// the result back, so structured values may reference template data too.
func (l *MetadataLoader) renderValue(name string, value interface{}, data Data) (interface{}, error) {
	text, err := yaml.Marshal(value)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrMetadataParse, "cannot serialize %s", name)
	}

	rendered, err := l.Renderer.Render(name, string(text), data)
	if err != nil {
		return nil, err
	}

	var out interface{}
	if err := yaml.Unmarshal([]byte(rendered), &out); err != nil {
		return nil, errors.Wrapf(err, errors.ErrMetadataParse, "rendered value of %s is not valid YAML", name)
	}
	return out, nil
}
