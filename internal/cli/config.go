package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/stamp/pkg/config"
	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Generate(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	var (
		path  string
		force bool
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := path
			if target == "" {
				target = a.userConfigPath
			}
			if target == "" {
				target = config.UserConfigPath()
			}

			if _, err := os.Stat(target); err == nil && !force {
				return errors.Newf(errors.ErrConflict, MsgConfigExists, target).WithPath(target)
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(target)).WithPath(target)
			}
			if err := os.WriteFile(target, []byte(config.GenerateConfigContent()), 0o644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target).WithPath(target)
			}
			a.output.Note(fmt.Sprintf(MsgConfigWritten, target))
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "", MsgFlagConfigPath)
	initCmd.Flags().BoolVar(&force, "force", false, MsgFlagConfigForce)
	cmd.AddCommand(initCmd)

	return cmd
}
