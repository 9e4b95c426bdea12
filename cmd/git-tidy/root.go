package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-tidy/internal/config"
	"github.com/raphi011/git-tidy/internal/git"
	"github.com/raphi011/git-tidy/internal/log"
	"github.com/raphi011/git-tidy/internal/output"
)

// newRootCmd builds the root command. git-tidy is a single-purpose tool:
// the root command itself runs the tidy flow.
func newRootCmd() *cobra.Command {
	var (
		verbose     bool
		quiet       bool
		clean       bool
		merged      bool
		olderThan   string
		dryRun      bool
		force       bool
		keepPattern string
		base        string
	)

	cmd := &cobra.Command{
		Use:   "git-tidy",
		Short: "Delete merged and stale local git branches",
		Long: `git-tidy lists the local branches of the current repository, shows
which ones are safe to delete, and deletes them with --clean.

The current branch is always protected. Further protection comes from
built-in defaults (master, develop, main), config files, and the
--keep-pattern flag. Configuration is read from
~/.config/git-tidy/config.toml and a per-project .git-tidy.toml.

Examples:
  git-tidy                                 # preview deletable branches
  git-tidy --merged --older-than=30d       # only merged branches idle > 30 days
  git-tidy --clean                         # delete after confirmation
  git-tidy --clean --force                 # delete without confirmation
  git-tidy --keep-pattern='^spike/'        # protect matching branches`,
		Args:                       cobra.NoArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			// Flags are parsed by now; attach the logger here so
			// --verbose/--quiet take effect.
			ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
			cmd.SetContext(ctx)

			return git.CheckGit()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := tidyOptions{
				Clean:       clean,
				Merged:      merged,
				DryRun:      dryRun,
				Force:       force,
				KeepPattern: keepPattern,
				Base:        base,
			}

			if olderThan != "" {
				threshold, err := config.ParseDuration(olderThan)
				if err != nil {
					return fmt.Errorf("in --older-than: %w", err)
				}
				opts.OlderThan = threshold
			}

			return runTidy(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&clean, "clean", false, "Delete branches (default: preview only)")
	cmd.Flags().BoolVar(&merged, "merged", false, "Only consider merged branches")
	cmd.Flags().StringVar(&olderThan, "older-than", "", "Only consider branches idle longer than DURATION (e.g. 30d, 2w)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", true, "Preview changes without deleting")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	cmd.Flags().StringVar(&keepPattern, "keep-pattern", "", "Regex protecting matching branches")
	cmd.Flags().StringVar(&base, "base", "", "Branch merge status is checked against (default: current branch)")

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(newInitCmd())

	return cmd
}

// Execute runs the root command with signal handling and a context-carried
// printer for primary output.
func Execute() {
	rootCmd := newRootCmd()

	// Interrupt during the confirmation prompt must abort before any
	// deletion; cancelling the context stops in-flight git commands too.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = output.WithPrinter(ctx, os.Stdout)
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
