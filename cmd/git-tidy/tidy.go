package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/git-tidy/internal/config"
	"github.com/raphi011/git-tidy/internal/git"
	"github.com/raphi011/git-tidy/internal/log"
	"github.com/raphi011/git-tidy/internal/output"
	"github.com/raphi011/git-tidy/internal/policy"
	"github.com/raphi011/git-tidy/internal/ui"
	"github.com/raphi011/git-tidy/internal/ui/prompt"
	"github.com/raphi011/git-tidy/internal/ui/styles"
)

// tidyOptions carries the parsed CLI flags into the run.
type tidyOptions struct {
	Dir         string // working directory, "" = cwd (tests override)
	Clean       bool
	Merged      bool
	DryRun      bool
	Force       bool
	OlderThan   time.Duration
	KeepPattern string
	Base        string
}

// runTidy is one linear pass: load config, list branches once, resolve
// each branch against the same policy snapshot, present, optionally
// confirm, delete sequentially.
func runTidy(ctx context.Context, opts tidyOptions) error {
	out := output.FromContext(ctx)

	repoPath, err := git.TopLevel(ctx, opts.Dir)
	if err != nil {
		return err
	}

	global, err := config.LoadGlobal()
	if err != nil {
		return err
	}
	project, err := config.LoadLocal(repoPath)
	if err != nil {
		return err
	}
	cfg := config.Merge(config.Default(), global, project)

	base := opts.Base
	if base == "" {
		base = cfg.Filters.BaseBranch // "" = current branch
	}

	pol, err := policy.Compile(cfg, policy.Options{
		KeepPattern: opts.KeepPattern,
		MergedOnly:  opts.Merged,
		OlderThan:   opts.OlderThan,
	})
	if err != nil {
		return err
	}

	// Spinner only on a terminal; piped output stays clean.
	var sp *ui.Spinner
	if isatty.IsTerminal(os.Stdout.Fd()) {
		sp = ui.NewSpinner("Scanning branches...")
		sp.Start()
	}

	branches, err := git.ListBranches(ctx, repoPath, base)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}

	now := time.Now()

	var toDelete []git.Branch
	var protected, filtered []ui.KeptBranch

	for _, branch := range branches {
		decision := pol.Resolve(branch.Name, branch.IsCurrent)
		if decision.Verdict == policy.Protected {
			protected = append(protected, ui.KeptBranch{Branch: branch, Reason: decision.Reason})
			continue
		}

		decision = pol.Filter(branch.Merged, branch.LastCommit, now)
		if decision.Verdict == policy.FilteredOut {
			filtered = append(filtered, ui.KeptBranch{Branch: branch, Reason: decision.Reason})
			continue
		}

		toDelete = append(toDelete, branch)
	}

	out.Print(ui.FormatBranchReport(toDelete, protected, filtered, now))

	if len(toDelete) == 0 {
		out.Println()
		out.Println(styles.SuccessStyle.Bold(true).Render("No branches to delete."))
		return nil
	}

	if !opts.Clean {
		if opts.DryRun {
			out.Println()
			out.Println(styles.InfoStyle.Render("Run with --clean to delete these branches."))
		}
		return nil
	}

	if !opts.Force {
		res, err := prompt.Confirm(fmt.Sprintf("\nDelete %d branches?", len(toDelete)))
		if err != nil {
			return err
		}
		if res.Cancelled || !res.Confirmed {
			out.Println(styles.WarningStyle.Render("Cancelled."))
			return nil
		}
	}

	deleted, skipped, failed := deleteBranches(ctx, repoPath, toDelete)

	out.Println()
	out.Print(ui.FormatSummary(deleted, failed, skipped))

	if failed > 0 {
		return fmt.Errorf("failed to delete %d of %d branches", failed, len(toDelete))
	}
	return nil
}

// deleteBranches removes branches one by one, continuing past individual
// failures. Before each deletion the current branch is re-read: a branch
// checked out between listing and deletion is skipped, not failed.
func deleteBranches(ctx context.Context, repoPath string, toDelete []git.Branch) (deleted, skipped, failed int) {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	for _, branch := range toDelete {
		current, err := git.CurrentBranch(ctx, repoPath)
		if err == nil && current == branch.Name {
			out.Printf("%s %s: now current branch, skipped\n", styles.WarningStyle.Render("Skipped"), branch.Name)
			skipped++
			continue
		}

		if err := git.DeleteBranch(ctx, repoPath, branch.Name); err != nil {
			l.Printf("Failed to delete %s: %v\n", branch.Name, err)
			failed++
			continue
		}

		out.Printf("%s %s\n", styles.SuccessStyle.Render("Deleted"), branch.Name)
		deleted++
	}

	return deleted, skipped, failed
}
