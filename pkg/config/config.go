package config

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// Config is the effective stamp configuration
type Config struct {
	Templates   Templates   `koanf:"templates" toml:"templates"`
	Walker      Walker      `koanf:"walker" toml:"walker"`
	Images      Images      `koanf:"images" toml:"images"`
	VSCode      VSCode      `koanf:"vscode" toml:"vscode"`
	Permissions Permissions `koanf:"permissions" toml:"permissions"`
}

// Templates controls how bundle files are recognised as templates
type Templates struct {
	Suffix   string `koanf:"suffix" toml:"suffix"`
	MetaFile string `koanf:"meta_file" toml:"meta_file"`
}

// Walker holds the skip lists applied while traversing bundles
type Walker struct {
	SkipDirs  []string `koanf:"skip_dirs" toml:"skip_dirs"`
	SkipFiles []string `koanf:"skip_files" toml:"skip_files"`
}

// Images are the container images offered to templates
type Images struct {
	DevContainer           string `koanf:"dev_container" toml:"dev_container"`
	DevContainerUpstream   string `koanf:"dev_container_upstream" toml:"dev_container_upstream"`
	DevContainerDownstream string `koanf:"dev_container_downstream" toml:"dev_container_downstream"`
	DevFile                string `koanf:"dev_file" toml:"dev_file"`
	ExecutionEnvironment   string `koanf:"execution_environment" toml:"execution_environment"`
}

type VSCode struct {
	RecommendedExtensions []string `koanf:"recommended_extensions" toml:"recommended_extensions"`
}

// Permissions used for written files and created directories
type Permissions struct {
	File int `koanf:"file" toml:"file"`
	Dir  int `koanf:"dir" toml:"dir"`
}

// FileMode returns the permission bits for written files
func (p Permissions) FileMode() fs.FileMode {
	return fs.FileMode(p.File) & fs.ModePerm
}

// DirMode returns the permission bits for created directories
func (p Permissions) DirMode() fs.FileMode {
	return fs.FileMode(p.Dir) & fs.ModePerm
}

// Validate checks the values a user can get wrong
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Templates.Suffix) == "" {
		return errors.New(errors.ErrConfigValid, "templates.suffix cannot be empty")
	}
	if c.Templates.MetaFile == "" || strings.ContainsAny(c.Templates.MetaFile, `/\`) {
		return errors.Newf(errors.ErrConfigValid, "templates.meta_file must be a plain file name, got %q", c.Templates.MetaFile)
	}
	for _, pattern := range c.Walker.SkipFiles {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Newf(errors.ErrConfigValid, "walker.skip_files has an invalid pattern %q", pattern)
		}
	}
	if c.Permissions.FileMode() == 0 || c.Permissions.DirMode() == 0 {
		return errors.New(errors.ErrConfigValid, "permissions.file and permissions.dir must be non-zero")
	}
	return nil
}

// GlobalTemplateVars returns the template data every scaffold starts with
func (c *Config) GlobalTemplateVars() map[string]interface{} {
	extensions := make([]interface{}, 0, len(c.VSCode.RecommendedExtensions))
	for _, ext := range c.VSCode.RecommendedExtensions {
		extensions = append(extensions, ext)
	}

	return map[string]interface{}{
		"dev_container_image":         c.Images.DevContainer,
		"dev_file_image":              c.Images.DevFile,
		"execution_environment_image": c.Images.ExecutionEnvironment,
		"recommended_extensions":      extensions,
	}
}

// DevContainerImage resolves the image aliases accepted by
// `add resource devcontainer --image`. Anything else is a literal image.
func (c *Config) DevContainerImage(alias string) string {
	switch alias {
	case "", "auto":
		return c.Images.DevContainer
	case "upstream":
		return c.Images.DevContainerUpstream
	case "aap":
		return c.Images.DevContainerDownstream
	default:
		return alias
	}
}
