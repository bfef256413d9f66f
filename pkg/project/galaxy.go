package project

import (
	"bytes"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/types"
	"gopkg.in/yaml.v3"
)

// AddGalaxyDependency adds name: version to the dependencies of the
// galaxy.yml at path, keeping key order and comments. It reports whether the
// file changed; an existing entry for name is left alone.
func AddGalaxyDependency(fsys types.FS, path, name, version string) (bool, error) {
	raw, err := fsys.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path).WithPath(path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return false, errors.Wrapf(err, errors.ErrMetadataParse, "malformed %s", path).WithPath(path)
	}
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return false, errors.Newf(errors.ErrMetadataParse, "%s is not a mapping", path).WithPath(path)
	}

	deps := mappingValue(root, "dependencies")
	switch {
	case deps == nil:
		deps = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		root.Content = append(root.Content, scalar("dependencies"), deps)
	case deps.Kind == yaml.ScalarNode && (deps.Tag == "!!null" || deps.Value == ""):
		*deps = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	case deps.Kind != yaml.MappingNode:
		return false, errors.Newf(errors.ErrMetadataParse, "dependencies in %s is not a mapping", path).WithPath(path)
	}

	if mappingValue(deps, name) != nil {
		return false, nil
	}
	deps.Style = 0
	deps.Content = append(deps.Content, scalar(name), scalar(version))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return false, errors.Wrapf(err, errors.ErrInternal, "failed to encode %s", path).WithPath(path)
	}
	if err := enc.Close(); err != nil {
		return false, errors.Wrapf(err, errors.ErrInternal, "failed to encode %s", path).WithPath(path)
	}

	out := append([]byte("---\n"), buf.Bytes()...)
	if err := fsys.WriteFile(path, out, 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).WithPath(path)
	}
	return true, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
