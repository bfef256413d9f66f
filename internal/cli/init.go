package cli

import (
	"github.com/arthur-debert/stamp/pkg/project"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		GroupID: "scaffold",
	}
	flags.register(cmd, true)

	cmd.AddCommand(&cobra.Command{
		Use:     "collection <namespace.name> [path]",
		Short:   MsgInitCollectionShort,
		Example: "  stamp init collection acme.widgets ./widgets",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScaffold(cmd, project.KindInitCollection, map[string]interface{}{
				"collection": args[0],
				"path":       argOr(args, 1, "."),
			}, &flags)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "playbook <org.project> [path]",
		Short:   MsgInitPlaybookShort,
		Example: "  stamp init playbook acme.webops ./webops",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScaffold(cmd, project.KindInitPlaybook, map[string]interface{}{
				"collection": args[0],
				"path":       argOr(args, 1, "."),
			}, &flags)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "execution_env [path]",
		Short: MsgInitExecutionEnvShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScaffold(cmd, project.KindInitExecutionEnv, map[string]interface{}{
				"path": argOr(args, 0, "."),
			}, &flags)
		},
	})

	return cmd
}
