package cli

import (
	"fmt"

	"github.com/arthur-debert/stamp/pkg/project"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:     "add",
		Short:   MsgAddShort,
		GroupID: "scaffold",
	}
	flags.register(cmd, false)

	cmd.AddCommand(newAddResourceCmd(a, &flags))
	cmd.AddCommand(newAddPluginCmd(a, &flags))
	return cmd
}

func newAddResourceCmd(a *app, flags *runFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: MsgAddResourceShort,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "devfile [path]",
		Short: MsgAddDevfileShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScaffold(cmd, project.KindAddDevfile, map[string]interface{}{
				"path": argOr(args, 0, "."),
			}, flags)
		},
	})

	var image string
	devcontainer := &cobra.Command{
		Use:   "devcontainer [path]",
		Short: MsgAddDevcontainerShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScaffold(cmd, project.KindAddDevcontainer, map[string]interface{}{
				"path":  argOr(args, 0, "."),
				"image": image,
			}, flags)
		},
	}
	devcontainer.Flags().StringVarP(&image, "image", "i", "auto", MsgFlagImage)
	cmd.AddCommand(devcontainer)

	cmd.AddCommand(&cobra.Command{
		Use:   "execution-environment [path]",
		Short: MsgAddEEShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScaffold(cmd, project.KindAddExecutionEnvironment, map[string]interface{}{
				"path": argOr(args, 0, "."),
			}, flags)
		},
	})

	return cmd
}

var pluginKinds = []struct {
	name string
	kind project.Kind
}{
	{"action", project.KindAddActionPlugin},
	{"filter", project.KindAddFilterPlugin},
	{"lookup", project.KindAddLookupPlugin},
	{"module", project.KindAddModule},
	{"test", project.KindAddTestPlugin},
}

func newAddPluginCmd(a *app, flags *runFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugin",
		Short: MsgAddPluginShort,
	}

	for _, p := range pluginKinds {
		kind := p.kind
		cmd.AddCommand(&cobra.Command{
			Use:     p.name + " <name> [collection path]",
			Short:   fmt.Sprintf("Add a %s plugin", p.name),
			Example: fmt.Sprintf("  stamp add plugin %s sample_%s ./acme/widgets", p.name, p.name),
			Args:    cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runScaffold(cmd, kind, map[string]interface{}{
					"name": args[0],
					"path": argOr(args, 1, "."),
				}, flags)
			},
		})
	}
	return cmd
}
