package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/paths"
	"github.com/arthur-debert/stamp/pkg/scaffold"
)

// Kind names one scaffold category
type Kind string

const (
	KindInitCollection   Kind = "init.collection"
	KindInitPlaybook     Kind = "init.playbook"
	KindInitExecutionEnv Kind = "init.execution_env"

	KindAddDevfile              Kind = "add.resource.devfile"
	KindAddDevcontainer         Kind = "add.resource.devcontainer"
	KindAddExecutionEnvironment Kind = "add.resource.execution-environment"

	KindAddFilterPlugin Kind = "add.plugin.filter"
	KindAddLookupPlugin Kind = "add.plugin.lookup"
	KindAddTestPlugin   Kind = "add.plugin.test"
	KindAddModule       Kind = "add.plugin.module"
	KindAddActionPlugin Kind = "add.plugin.action"
)

// Scaffold is the closed set of things stamp can scaffold. Each variant
// carries its own options and knows which bundles it uses.
type Scaffold interface {
	Kind() Kind
	// Plan resolves bundles, destinations and template data.
	Plan(env *Env) (*Job, error)
	isScaffold()
}

// Job is a resolved scaffold, ready for the walker
type Job struct {
	Targets    []scaffold.Target
	ConsumerID string
	Data       scaffold.Data
	// Root is the directory the job works in.
	Root string
	// Prepare runs before planning the file list.
	Prepare func(env *Env, opts RunOptions) error
	// Finish runs after a successful copy.
	Finish func(env *Env) error
	// Success is the note printed when the job completes.
	Success string
}

var commonBundles = []string{
	"common.devcontainer",
	"common.devfile",
	"common.gitignore",
	"common.vscode",
}

func singleTarget(root string, bundles ...string) []scaffold.Target {
	targets := make([]scaffold.Target, 0, len(bundles))
	for _, b := range bundles {
		targets = append(targets, scaffold.Target{Bundle: b, Dest: root})
	}
	return targets
}

// InitCollection scaffolds a new collection
type InitCollection struct {
	Collection string `mapstructure:"collection" validate:"required,fqcn"`
	Path       string `mapstructure:"path" validate:"required"`
}

func (InitCollection) Kind() Kind { return KindInitCollection }
func (InitCollection) isScaffold() {}

func (s InitCollection) Plan(env *Env) (*Job, error) {
	namespace, name, _ := strings.Cut(s.Collection, ".")
	root, err := paths.Normalize(s.Path)
	if err != nil {
		return nil, err
	}
	root = paths.CollectionRoot(root, namespace, name)

	return &Job{
		Targets:    singleTarget(root, append([]string{"collection_project"}, commonBundles...)...),
		ConsumerID: "collection_project",
		Data: env.baseData(map[string]interface{}{
			"namespace":       namespace,
			"collection_name": name,
			"plugin_name":     "",
			"dev_file_name":   env.uniqueName(namespace + "." + name),
		}),
		Root:    root,
		Prepare: prepareInit(root),
		Success: fmt.Sprintf("collection project created at %s", root),
	}, nil
}

// InitPlaybook scaffolds a playbook project with an adjacent collection
// named after the SCM org and project.
type InitPlaybook struct {
	Collection string `mapstructure:"collection" validate:"required,fqcn"`
	Path       string `mapstructure:"path" validate:"required"`
}

func (InitPlaybook) Kind() Kind { return KindInitPlaybook }
func (InitPlaybook) isScaffold() {}

func (s InitPlaybook) Plan(env *Env) (*Job, error) {
	org, project, _ := strings.Cut(s.Collection, ".")
	root, err := paths.Normalize(s.Path)
	if err != nil {
		return nil, err
	}

	return &Job{
		Targets:    singleTarget(root, append([]string{"playbook_project"}, commonBundles...)...),
		ConsumerID: "playbook_project",
		Data: env.baseData(map[string]interface{}{
			"namespace":       org,
			"collection_name": project,
			"plugin_name":     "",
			"dev_file_name":   env.uniqueName(org + "." + project),
		}),
		Root:    root,
		Prepare: prepareInit(root),
		Success: fmt.Sprintf("playbook project created at %s", root),
	}, nil
}

// InitExecutionEnv scaffolds an execution environment project
type InitExecutionEnv struct {
	Path string `mapstructure:"path" validate:"required"`
}

func (InitExecutionEnv) Kind() Kind { return KindInitExecutionEnv }
func (InitExecutionEnv) isScaffold() {}

func (s InitExecutionEnv) Plan(env *Env) (*Job, error) {
	root, err := paths.Normalize(s.Path)
	if err != nil {
		return nil, err
	}

	return &Job{
		Targets:    singleTarget(root, "execution_env_project"),
		ConsumerID: "execution_env_project",
		Data:       env.baseData(nil),
		Root:       root,
		Prepare:    prepareInit(root),
		Success:    fmt.Sprintf("execution_env project created at %s", root),
	}, nil
}

// ResourceType is a resource that can be added to an existing project
type ResourceType string

const (
	ResourceDevfile              ResourceType = "devfile"
	ResourceDevcontainer         ResourceType = "devcontainer"
	ResourceExecutionEnvironment ResourceType = "execution-environment"
)

// AddDevfile adds a Dev Spaces devfile
type AddDevfile struct {
	Path string `mapstructure:"path" validate:"required"`
}

func (AddDevfile) Kind() Kind { return KindAddDevfile }
func (AddDevfile) isScaffold() {}

func (s AddDevfile) Plan(env *Env) (*Job, error) {
	return planResource(env, ResourceDevfile, s.Path, func(root string) map[string]interface{} {
		return map[string]interface{}{"dev_file_name": env.uniqueName(paths.LastTwo(root))}
	})
}

// AddDevcontainer adds dev container definitions. Image accepts the aliases
// auto, upstream and aap or a literal image reference.
type AddDevcontainer struct {
	Path  string `mapstructure:"path" validate:"required"`
	Image string `mapstructure:"image"`
}

func (AddDevcontainer) Kind() Kind { return KindAddDevcontainer }
func (AddDevcontainer) isScaffold() {}

func (s AddDevcontainer) Plan(env *Env) (*Job, error) {
	return planResource(env, ResourceDevcontainer, s.Path, func(root string) map[string]interface{} {
		return map[string]interface{}{
			"dev_file_name":       env.uniqueName(paths.LastTwo(root)),
			"dev_container_image": env.Config.DevContainerImage(s.Image),
		}
	})
}

// AddExecutionEnvironment adds an execution-environment.yml
type AddExecutionEnvironment struct {
	Path string `mapstructure:"path" validate:"required"`
}

func (AddExecutionEnvironment) Kind() Kind { return KindAddExecutionEnvironment }
func (AddExecutionEnvironment) isScaffold() {}

func (s AddExecutionEnvironment) Plan(env *Env) (*Job, error) {
	return planResource(env, ResourceExecutionEnvironment, s.Path, nil)
}

func planResource(env *Env, resource ResourceType, path string, extra func(root string) map[string]interface{}) (*Job, error) {
	root, err := paths.Normalize(path)
	if err != nil {
		return nil, err
	}

	data := map[string]interface{}{"resource_type": string(resource)}
	if extra != nil {
		for k, v := range extra(root) {
			data[k] = v
		}
	}

	bundle := "common." + string(resource)
	return &Job{
		Targets:    singleTarget(root, bundle),
		ConsumerID: bundle,
		Data:       env.baseData(data),
		Root:       root,
		Prepare:    prepareAdd(root, false),
		Success:    fmt.Sprintf("Resource added to %s", root),
	}, nil
}

// PluginType is a collection plugin category
type PluginType string

const (
	PluginFilter PluginType = "filter"
	PluginLookup PluginType = "lookup"
	PluginTest   PluginType = "test"
	PluginModule PluginType = "module"
	PluginAction PluginType = "action"
)

// dir is the plugins/ subdirectory, which is plural for modules.
func (p PluginType) dir() string {
	if p == PluginModule {
		return "modules"
	}
	return string(p)
}

func (p PluginType) label() string {
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// DefaultPluginName is used when no plugin name is given.
const DefaultPluginName = "hello_world"

// AddPlugin adds a plugin to an existing collection
type AddPlugin struct {
	Type PluginType `mapstructure:"type" validate:"required,oneof=filter lookup test module action"`
	Name string     `mapstructure:"name" validate:"required,plugin_name"`
	Path string     `mapstructure:"path" validate:"required"`
}

func (s AddPlugin) Kind() Kind { return Kind("add.plugin." + string(s.Type)) }
func (AddPlugin) isScaffold() {}

func (s AddPlugin) Plan(env *Env) (*Job, error) {
	root, err := paths.Normalize(s.Path)
	if err != nil {
		return nil, err
	}

	bundle := "collection_project.plugins." + s.Type.dir()
	pluginPath := filepath.Join(root, "plugins", s.Type.dir())
	targets := []scaffold.Target{{Bundle: bundle, Dest: pluginPath}}

	job := &Job{
		ConsumerID: bundle,
		Data: env.baseData(map[string]interface{}{
			"plugin_type": s.Type.dir(),
			"plugin_name": s.Name,
		}),
		Root:    root,
		Prepare: prepareAdd(root, true),
		Success: fmt.Sprintf("%s plugin added to %s", s.Type.label(), pluginPath),
	}

	if s.Type == PluginAction {
		targets = append(targets, scaffold.Target{
			Bundle: "companions.action_module",
			Dest:   filepath.Join(root, "plugins", "modules"),
		})
		job.Finish = func(env *Env) error {
			galaxy := filepath.Join(root, "galaxy.yml")
			added, err := AddGalaxyDependency(env.FS, galaxy, "ansible.utils", "*")
			if err != nil {
				return err
			}
			if added {
				env.Output.Info("added ansible.utils to the dependencies in " + galaxy)
			}
			return nil
		}
	}
	job.Targets = targets
	return job, nil
}

// prepareInit validates an init destination. A file is rejected; a non-empty
// directory is removed when --force is given, otherwise conflicts go through
// the overwrite policy.
func prepareInit(root string) func(env *Env, opts RunOptions) error {
	return func(env *Env, opts RunOptions) error {
		env.Output.Debug("final destination path set to " + root)

		info, err := env.FS.Stat(root)
		if err != nil {
			if isNotExist(err) {
				return mkdirUnlessDryRun(env, root, opts)
			}
			return errors.Wrapf(err, errors.ErrFileRead, "cannot inspect %s", root).WithPath(root)
		}
		if !info.IsDir() {
			return errors.Newf(errors.ErrPathInvalid, "the path %s already exists, but is a file - aborting", root).WithPath(root)
		}

		entries, err := env.FS.ReadDir(root)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "cannot list %s", root).WithPath(root)
		}
		if len(entries) > 0 && opts.Force {
			env.Output.Warning("The `force` flag is deprecated and will be removed soon. Please start using `overwrite` flag.")
			env.Output.Warning("re-initializing existing directory " + root)
			if opts.DryRun {
				return nil
			}
			if err := env.FS.RemoveAll(root); err != nil {
				return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove existing directory %s", root).WithPath(root)
			}
		}
		return mkdirUnlessDryRun(env, root, opts)
	}
}

func mkdirUnlessDryRun(env *Env, root string, opts RunOptions) error {
	if opts.DryRun {
		return nil
	}
	if err := env.FS.MkdirAll(root, env.Config.Permissions.DirMode()); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", root).WithPath(root)
	}
	return nil
}

// prepareAdd checks that root exists and, for plugins, that it is a
// collection root.
func prepareAdd(root string, collection bool) func(env *Env, opts RunOptions) error {
	return func(env *Env, opts RunOptions) error {
		env.Output.Debug("final collection path set to " + root)

		info, err := env.FS.Stat(root)
		if err != nil || !info.IsDir() {
			return errors.Newf(errors.ErrNotFound,
				"The path %s does not exist. Please provide an existing directory.", root).WithPath(root)
		}
		if !collection {
			return nil
		}

		galaxy := filepath.Join(root, "galaxy.yml")
		if info, err := env.FS.Stat(galaxy); err != nil || info.IsDir() {
			return errors.Newf(errors.ErrInvalidInput,
				"The path %s is not a valid Ansible collection path. "+
					"Please provide the root path of a valid ansible collection.", root).WithPath(root)
		}
		return nil
	}
}
