//go:build integration

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/raphi011/git-tidy/internal/log"
	"github.com/raphi011/git-tidy/internal/output"
)

// testContext returns a context with a buffered printer and a quiet
// logger, so assertions can inspect what the run printed.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)
	ctx = log.WithLogger(ctx, log.New(&bytes.Buffer{}, false, false))
	return ctx, &buf
}

// gitRun executes git in repoPath with optional extra environment,
// failing the test on error.
func gitRun(t *testing.T, repoPath string, env []string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath
	cmd.Env = append(os.Environ(), env...)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// setupTestRepo creates a git repo with "main" checked out and an
// initial commit dated 100 days ago. Returns the repo path with
// symlinks resolved (macOS /var -> /private/var).
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	gitRun(t, dir, nil, "init", "-b", "main")
	gitRun(t, dir, nil, "config", "user.email", "test@test.com")
	gitRun(t, dir, nil, "config", "user.name", "Test User")
	gitRun(t, dir, nil, "config", "commit.gpgsign", "false")

	commitFile(t, dir, "README.md", "# test\n", daysAgo(100))

	return dir
}

// commitFile writes a file and commits it with the given commit time.
func commitFile(t *testing.T, repoPath, name, content string, when time.Time) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}

	stamp := when.Format(time.RFC3339)
	env := []string{"GIT_AUTHOR_DATE=" + stamp, "GIT_COMMITTER_DATE=" + stamp}
	gitRun(t, repoPath, env, "add", name)
	gitRun(t, repoPath, env, "commit", "-m", "add "+name)
}

// addBranch creates a branch off the current HEAD with one commit at the
// given time, then returns to main. If merge is true the branch is
// merged back into main (fast-forward), so main's tip moves to it.
func addBranch(t *testing.T, repoPath, name string, when time.Time, merge bool) {
	t.Helper()

	gitRun(t, repoPath, nil, "checkout", "-q", "-b", name)
	commitFile(t, repoPath, fmt.Sprintf("%s.txt", filepath.Base(name)), name+"\n", when)
	gitRun(t, repoPath, nil, "checkout", "-q", "main")

	if merge {
		stamp := when.Format(time.RFC3339)
		env := []string{"GIT_AUTHOR_DATE=" + stamp, "GIT_COMMITTER_DATE=" + stamp}
		gitRun(t, repoPath, env, "merge", "-q", "--no-edit", name)
	}
}

// branchExists reports whether a local branch exists.
func branchExists(t *testing.T, repoPath, name string) bool {
	t.Helper()
	cmd := exec.Command("git", "show-ref", "--verify", "--quiet", "refs/heads/"+name)
	cmd.Dir = repoPath
	return cmd.Run() == nil
}

func daysAgo(days int) time.Time {
	return time.Now().Add(-time.Duration(days) * 24 * time.Hour)
}
