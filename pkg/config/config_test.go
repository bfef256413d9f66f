package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stamp/pkg/errors"
	koanftoml "github.com/knadh/koanf/parsers/toml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadIsolated(t *testing.T, opts LoadOptions) (*Config, error) {
	t.Helper()
	if opts.UserConfigPath == "" {
		opts.UserConfigPath = filepath.Join(t.TempDir(), "missing.toml")
	}
	return Load(opts)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".tmpl", cfg.Templates.Suffix)
	assert.Equal(t, "__meta__.yml", cfg.Templates.MetaFile)
	assert.Equal(t, []string{"__pycache__", ".git"}, cfg.Walker.SkipDirs)
	assert.Equal(t, []string{"*.pyc", "*.pyo"}, cfg.Walker.SkipFiles)
	assert.Equal(t, "ghcr.io/ansible/community-ansible-dev-tools:latest", cfg.Images.DevContainer)
	assert.Equal(t, "ghcr.io/ansible/ansible-devspaces:latest", cfg.Images.DevFile)
	assert.Equal(t, "quay.io/fedora/fedora:41", cfg.Images.ExecutionEnvironment)
	assert.Equal(t, os.FileMode(0o644), cfg.Permissions.FileMode())
	assert.Equal(t, os.FileMode(0o755), cfg.Permissions.DirMode())
	require.NoError(t, cfg.Validate())
}

func TestLoadLayers(t *testing.T) {
	dir := t.TempDir()
	userPath := filepath.Join(dir, "user.toml")
	explicitPath := filepath.Join(dir, "explicit.toml")

	require.NoError(t, os.WriteFile(userPath, []byte(`
[templates]
suffix = ".j2"

[images]
dev_file = "example.com/devspaces:1"
`), 0644))
	require.NoError(t, os.WriteFile(explicitPath, []byte(`
[templates]
suffix = ".tpl"
`), 0644))

	t.Run("user file overrides defaults", func(t *testing.T) {
		cfg, err := Load(LoadOptions{UserConfigPath: userPath})
		require.NoError(t, err)
		assert.Equal(t, ".j2", cfg.Templates.Suffix)
		assert.Equal(t, "example.com/devspaces:1", cfg.Images.DevFile)
		assert.Equal(t, "__meta__.yml", cfg.Templates.MetaFile)
	})

	t.Run("explicit file overrides user file", func(t *testing.T) {
		cfg, err := Load(LoadOptions{UserConfigPath: userPath, ConfigFile: explicitPath})
		require.NoError(t, err)
		assert.Equal(t, ".tpl", cfg.Templates.Suffix)
		assert.Equal(t, "example.com/devspaces:1", cfg.Images.DevFile)
	})

	t.Run("environment overrides files", func(t *testing.T) {
		t.Setenv("STAMP_TEMPLATES_SUFFIX", ".env")
		t.Setenv("STAMP_WALKER_SKIP_DIRS", "__pycache__,.tox")
		cfg, err := Load(LoadOptions{UserConfigPath: userPath, ConfigFile: explicitPath})
		require.NoError(t, err)
		assert.Equal(t, ".env", cfg.Templates.Suffix)
		assert.Equal(t, []string{"__pycache__", ".tox"}, cfg.Walker.SkipDirs)
	})

	t.Run("overrides win", func(t *testing.T) {
		cfg, err := Load(LoadOptions{
			UserConfigPath: userPath,
			Overrides:      map[string]interface{}{"templates.suffix": ".override"},
		})
		require.NoError(t, err)
		assert.Equal(t, ".override", cfg.Templates.Suffix)
	})
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := loadIsolated(t, LoadOptions{ConfigFile: filepath.Join(dir, "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("yaml file", func(t *testing.T) {
		yamlPath := filepath.Join(dir, "stamp.yaml")
		require.NoError(t, os.WriteFile(yamlPath, []byte("images:\n  execution_environment: quay.io/acme/ee:2\n"), 0644))
		cfg, err := loadIsolated(t, LoadOptions{ConfigFile: yamlPath})
		require.NoError(t, err)
		assert.Equal(t, "quay.io/acme/ee:2", cfg.Images.ExecutionEnvironment)
		assert.Equal(t, ".tmpl", cfg.Templates.Suffix)
	})

	t.Run("malformed file", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(bad, []byte("[templates\nsuffix ="), 0644))
		_, err := loadIsolated(t, LoadOptions{ConfigFile: bad})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := loadIsolated(t, LoadOptions{
			Overrides: map[string]interface{}{"templates.meta_file": "meta/__meta__.yml"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestParserFor(t *testing.T) {
	assert.IsType(t, koanftoml.Parser(), parserFor("config.toml"))
	assert.IsType(t, koanfyaml.Parser(), parserFor("config.YML"))
	assert.IsType(t, koanftoml.Parser(), parserFor("config"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty suffix", mutate: func(c *Config) { c.Templates.Suffix = " " }, wantErr: true},
		{name: "empty meta file", mutate: func(c *Config) { c.Templates.MetaFile = "" }, wantErr: true},
		{name: "bad skip pattern", mutate: func(c *Config) { c.Walker.SkipFiles = []string{"[a-"} }, wantErr: true},
		{name: "zero file mode", mutate: func(c *Config) { c.Permissions.File = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGlobalTemplateVars(t *testing.T) {
	vars := Default().GlobalTemplateVars()

	assert.Equal(t, "ghcr.io/ansible/community-ansible-dev-tools:latest", vars["dev_container_image"])
	assert.Equal(t, "ghcr.io/ansible/ansible-devspaces:latest", vars["dev_file_image"])
	assert.Equal(t, []interface{}{"redhat.ansible", "redhat.vscode-redhat-account"}, vars["recommended_extensions"])
}

func TestDevContainerImage(t *testing.T) {
	cfg := Default()

	assert.Equal(t, cfg.Images.DevContainer, cfg.DevContainerImage("auto"))
	assert.Equal(t, cfg.Images.DevContainer, cfg.DevContainerImage(""))
	assert.Equal(t, cfg.Images.DevContainerUpstream, cfg.DevContainerImage("upstream"))
	assert.Equal(t, cfg.Images.DevContainerDownstream, cfg.DevContainerImage("aap"))
	assert.Equal(t, "example.com/custom:1", cfg.DevContainerImage("example.com/custom:1"))
}

func TestGenerateRoundTrip(t *testing.T) {
	cfg := Default()
	out, err := Generate(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[templates]")

	var decoded Config
	require.NoError(t, toml.Unmarshal(out, &decoded))
	assert.Equal(t, *cfg, decoded)
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[templates]")
	assert.Contains(t, content, `# suffix = ".tmpl"`)
	assert.NotContains(t, content, "\nsuffix =")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "walker.skip_dirs", envKey("STAMP_WALKER_SKIP_DIRS"))
	assert.Equal(t, "templates.suffix", envKey("STAMP_TEMPLATES_SUFFIX"))
}
