// Package cli builds the stamp command tree.
package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/stamp/internal/version"
	"github.com/arthur-debert/stamp/pkg/cobrax/topics"
	"github.com/arthur-debert/stamp/pkg/config"
	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/filesystem"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/output"
	"github.com/arthur-debert/stamp/pkg/project"
	"github.com/arthur-debert/stamp/pkg/resources"
	"github.com/arthur-debert/stamp/pkg/style"
	"github.com/arthur-debert/stamp/pkg/templar"
	"github.com/arthur-debert/stamp/pkg/types"
	"github.com/arthur-debert/stamp/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app is the state shared by every command of one invocation.
type app struct {
	verbosity  int
	configFile string
	noColor    bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	// userConfigPath replaces the XDG location, for tests.
	userConfigPath string
	// fs is the destination filesystem, the OS when nil.
	fs types.FS

	cfg    *config.Config
	output *output.Output
	topics *topics.TopicManager
}

// NewRootCmd creates the root command wired to the process stdio
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "stamp",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupFileOnly(a.verbosity)
			log.Debug().Str("command", cmd.CommandPath()).Msg("Command started")
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(
		&cobra.Group{ID: "scaffold", Title: "SCAFFOLD:"},
		&cobra.Group{ID: "misc", Title: "MISC:"},
	)

	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	tm, err := topics.InitializeWithOptions(rootCmd, helpTopics(), topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err == nil {
		a.topics = tm
	}

	return rootCmd
}

// setup loads the configuration and builds the output sink.
func (a *app) setup() error {
	color := a.color()
	if !color {
		style.DisableColor()
	}
	a.output = output.New(a.verbosity,
		output.WithWriters(a.out, a.errOut),
		output.WithColor(color),
	)

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile:     a.configFile,
		UserConfigPath: a.userConfigPath,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) color() bool {
	if a.noColor {
		return false
	}
	f, ok := a.out.(*os.File)
	return ok && style.ColorEnabled(f)
}

func (a *app) env() *project.Env {
	fsys := a.fs
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	var prompter types.Prompter
	if f, ok := a.in.(*os.File); ok && f == os.Stdin {
		prompter = confirmations.NewConsolePrompter()
	} else {
		prompter = confirmations.NewLinePrompter(a.in, a.out)
	}

	return &project.Env{
		FS:       fsys,
		Output:   a.output,
		Prompter: prompter,
		Config:   a.cfg,
		Bundles:  resources.FS(),
		Renderer: templar.New(),
		Version:  version.Version,
	}
}

// Execute runs stamp with os.Args and returns the process exit code.
func Execute() int {
	a := &app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	return execute(newRootCmd(a), a)
}

func execute(rootCmd *cobra.Command, a *app) int {
	if err := rootCmd.Execute(); err != nil {
		reportError(a, err)
		return 1
	}
	return 0
}

// reportError prints err through the output sink when it exists. Errors
// raised before setup (flag parsing) go straight to stderr.
func reportError(a *app, err error) {
	msg := err.Error()
	var se *errors.StampError
	if stderrors.As(err, &se) {
		msg = se.Message
		if se.Wrapped != nil {
			msg = fmt.Sprintf("%s: %v", se.Message, se.Wrapped)
		}
	}
	log.Debug().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Command failed")

	if a.output != nil {
		a.output.Error(msg)
		return
	}
	fmt.Fprintf(a.errOut, "Error: %s\n", msg)
}
