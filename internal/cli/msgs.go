package cli

// Command descriptions
const (
	MsgRootShort = "Scaffold Ansible content from built-in resource bundles"
	MsgRootLong  = `stamp scaffolds Ansible collections, playbook projects and execution
environments, and adds resources and plugins to existing projects.

Every file stamp would write is planned first. Files that already exist
with different content are reported as conflicts and are only replaced
with --overwrite or after confirming the prompt.`

	MsgInitShort             = "Initialize a new project"
	MsgInitCollectionShort   = "Create a new Ansible collection"
	MsgInitPlaybookShort     = "Create a playbook project with an adjacent collection"
	MsgInitExecutionEnvShort = "Create an execution environment project"

	MsgAddShort             = "Add resources or plugins to an existing project"
	MsgAddResourceShort     = "Add a resource to an existing directory"
	MsgAddDevfileShort      = "Add a Dev Spaces devfile"
	MsgAddDevcontainerShort = "Add dev container definitions"
	MsgAddEEShort           = "Add an execution-environment.yml"
	MsgAddPluginShort       = "Add a plugin to an existing collection"

	MsgListShort       = "List scaffold kinds and resource bundles"
	MsgConfigShort     = "Inspect or create the stamp configuration"
	MsgConfigShowShort = "Print the effective configuration"
	MsgConfigInitShort = "Write a commented user configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
)

// Flag descriptions
const (
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Configuration file layered over the user configuration"
	MsgFlagNoColor     = "Disable colored output"
	MsgFlagForce       = "Remove the destination directory before initializing (deprecated, use --overwrite)"
	MsgFlagOverwrite   = "Overwrite conflicting files without asking"
	MsgFlagNoOverwrite = "Fail instead of overwriting conflicting files"
	MsgFlagDryRun      = "Print the planned files without writing anything"
	MsgFlagDiff        = "With --dry-run, show a diff for every conflicting file"
	MsgFlagImage       = "Dev container image: auto, upstream, aap or an image reference"
	MsgFlagManDir      = "Directory the man pages are written to"
	MsgFlagConfigPath  = "Where to write the configuration file"
	MsgFlagConfigForce = "Replace an existing configuration file"
)

// Status and error messages
const (
	MsgConfigWritten = "configuration written to %s"
	MsgConfigExists  = "%s already exists, use --force to replace it"
	MsgManWritten    = "man pages written to %s"
	MsgNoCommand     = "no command specified"
)
