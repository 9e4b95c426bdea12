package git

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Branch describes a local branch at the time of enumeration.
// Records are produced fresh on each run and never persisted.
type Branch struct {
	Name       string
	Merged     bool
	LastCommit time.Time
	IsCurrent  bool
}

// forEachRefFormat yields "<name>\t<committerdate unix>\t<HEAD marker>"
// per branch in a single git call.
const forEachRefFormat = "%(refname:short)%09%(committerdate:unix)%09%(HEAD)"

// ListBranches enumerates local branches with merge status relative to
// base ("" means HEAD) and last-commit timestamps, newest first.
func ListBranches(ctx context.Context, repoPath, base string) ([]Branch, error) {
	out, err := outputGit(ctx, repoPath, "for-each-ref", "refs/heads", "--format="+forEachRefFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %v", err)
	}

	branches, err := parseBranches(out)
	if err != nil {
		return nil, err
	}

	merged, err := mergedSet(ctx, repoPath, base)
	if err != nil {
		return nil, err
	}
	for i := range branches {
		branches[i].Merged = merged[branches[i].Name]
	}

	sort.SliceStable(branches, func(i, j int) bool {
		return branches[i].LastCommit.After(branches[j].LastCommit)
	})

	return branches, nil
}

// parseBranches parses for-each-ref output in forEachRefFormat.
func parseBranches(out []byte) ([]Branch, error) {
	var branches []Branch

	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("unexpected for-each-ref line %q", line)
		}

		timestamp, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid commit timestamp in line %q: %v", line, err)
		}

		isCurrent := len(fields) > 2 && strings.TrimSpace(fields[2]) == "*"

		branches = append(branches, Branch{
			Name:       fields[0],
			LastCommit: time.Unix(timestamp, 0),
			IsCurrent:  isCurrent,
		})
	}

	return branches, nil
}

// mergedSet returns the names of local branches whose tips are reachable
// from base. An empty base checks against HEAD.
func mergedSet(ctx context.Context, repoPath, base string) (map[string]bool, error) {
	args := []string{"branch", "--merged"}
	if base != "" {
		args = append(args, base)
	}
	out, err := outputGit(ctx, repoPath, args...)
	if err != nil {
		if base != "" {
			return nil, fmt.Errorf("failed to check merge status against %q: %v", base, err)
		}
		return nil, fmt.Errorf("failed to check merge status: %v", err)
	}
	return parseMergedOutput(out), nil
}

// parseMergedOutput parses "git branch --merged" output.
// Lines look like "  name", "* name" (current) or "+ name" (in worktree).
func parseMergedOutput(out []byte) map[string]bool {
	merged := make(map[string]bool)
	for _, line := range strings.Split(string(out), "\n") {
		name := strings.TrimSpace(line)
		name = strings.TrimPrefix(name, "* ")
		name = strings.TrimPrefix(name, "+ ")
		if name != "" && name != "(no branch)" {
			merged[name] = true
		}
	}
	return merged
}

// CurrentBranch returns the name of the checked-out branch.
// Returns "" (no error) for a detached HEAD.
func CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	out, err := outputGit(ctx, repoPath, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %v", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// DeleteBranch removes a local branch regardless of its merge status.
// Protection decisions happen before this is called.
func DeleteBranch(ctx context.Context, repoPath, name string) error {
	return runGit(ctx, repoPath, "branch", "-D", name)
}
