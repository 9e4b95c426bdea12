package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-tidy/internal/config"
	"github.com/raphi011/git-tidy/internal/output"
)

// newInitCmd creates the init command, which writes a commented default
// config file.
func newInitCmd() *cobra.Command {
	var (
		force bool
		local bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Long: `Create a commented default configuration file.

Without flags, writes the global config (~/.config/git-tidy/config.toml).
With --local, writes a project .git-tidy.toml in the current directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			var path string
			var err error
			if local {
				dir, wdErr := os.Getwd()
				if wdErr != nil {
					return wdErr
				}
				path, err = config.InitLocal(dir, force)
			} else {
				path, err = config.Init(force)
			}
			if err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&local, "local", false, "Create a project .git-tidy.toml instead of the global config")

	return cmd
}
