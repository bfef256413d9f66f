package resources

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed all:bundles
var embedded embed.FS

// Bundle describes one named resource bundle shipped with stamp
type Bundle struct {
	Name        string
	Description string
}

// Catalog lists every bundle stamp knows how to scaffold, in display order.
var Catalog = []Bundle{
	{Name: "collection_project", Description: "Ansible collection skeleton with sample plugins"},
	{Name: "playbook_project", Description: "Playbook project with an adjacent collection"},
	{Name: "execution_env_project", Description: "Execution environment definition and build workflow"},
	{Name: "common.devcontainer", Description: "VS Code dev container definitions (docker, podman)"},
	{Name: "common.devfile", Description: "Dev Spaces devfile"},
	{Name: "common.execution-environment", Description: "Standalone execution-environment.yml"},
	{Name: "common.gitignore", Description: "Python and Ansible .gitignore"},
	{Name: "common.vscode", Description: "Recommended VS Code extensions"},
	{Name: "collection_project.plugins.action", Description: "Action plugin"},
	{Name: "collection_project.plugins.filter", Description: "Filter plugin"},
	{Name: "collection_project.plugins.lookup", Description: "Lookup plugin"},
	{Name: "collection_project.plugins.modules", Description: "Module"},
	{Name: "collection_project.plugins.test", Description: "Test plugin"},
	{Name: "companions.action_module", Description: "Module documentation stub paired with an action plugin"},
}

// FS returns the bundle tree rooted so that Path(name) resolves inside it.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "bundles")
	if err != nil {
		panic("resources: embedded bundle tree missing: " + err.Error())
	}
	return sub
}

// Path converts a dotted bundle name into its slash separated location,
// e.g. common.devfile -> common/devfile.
func Path(name string) string {
	return path.Clean(strings.ReplaceAll(name, ".", "/"))
}

// Names returns the catalog bundle names.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for _, b := range Catalog {
		names = append(names, b.Name)
	}
	return names
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Bundle, bool) {
	for _, b := range Catalog {
		if b.Name == name {
			return b, true
		}
	}
	return Bundle{}, false
}
