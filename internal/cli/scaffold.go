package cli

import (
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/project"
	"github.com/spf13/cobra"
)

// runFlags are the overwrite and preview flags of init and add.
type runFlags struct {
	force       bool
	overwrite   bool
	noOverwrite bool
	dryRun      bool
	diff        bool
}

func (f *runFlags) register(cmd *cobra.Command, withForce bool) {
	flags := cmd.PersistentFlags()
	if withForce {
		flags.BoolVarP(&f.force, "force", "f", false, MsgFlagForce)
	}
	flags.BoolVar(&f.overwrite, "overwrite", false, MsgFlagOverwrite)
	flags.BoolVar(&f.noOverwrite, "no-overwrite", false, MsgFlagNoOverwrite)
	flags.BoolVar(&f.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.BoolVar(&f.diff, "diff", false, MsgFlagDiff)
}

// runScaffold resolves kind from opts and runs it.
func (a *app) runScaffold(cmd *cobra.Command, kind project.Kind, opts map[string]interface{}, f *runFlags) error {
	logger := logging.GetLogger("cli.scaffold")
	logger.Info().Str("kind", string(kind)).Interface("options", opts).Msg("Resolving scaffold")

	s, err := project.Resolve(kind, opts)
	if err != nil {
		return err
	}

	return project.NewRunner(a.env()).Run(s, project.RunOptions{
		Force:       f.force,
		Overwrite:   f.overwrite,
		NoOverwrite: f.noOverwrite,
		DryRun:      f.dryRun,
		Diff:        f.diff,
		PlanOut:     cmd.OutOrStdout(),
		Color:       a.color(),
		Program:     cmd.Root().Name(),
	})
}

// argOr returns args[i], or def when it was not given.
func argOr(args []string, i int, def string) string {
	if i < len(args) {
		return args[i]
	}
	return def
}
