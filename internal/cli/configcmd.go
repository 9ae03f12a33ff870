package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"essaydesk/internal/config"
)

func newConfigCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the essaydesk config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write the default config to <dir>/" + config.FileName + " or --config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := o.configPath
			if path == "" {
				dir := "."
				if len(args) > 0 {
					dir = args[0]
				}
				path = filepath.Join(dir, config.FileName)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			svc := config.NewServiceForPath(path)
			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
