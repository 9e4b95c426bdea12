//go:build integration

package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/raphi011/git-tidy/internal/log"
)

func run(t *testing.T, dir string, env []string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

func commitAt(t *testing.T, dir, name string, when time.Time) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	stamp := when.Format(time.RFC3339)
	env := []string{"GIT_AUTHOR_DATE=" + stamp, "GIT_COMMITTER_DATE=" + stamp}
	run(t, dir, env, "add", name)
	run(t, dir, env, "commit", "-m", "add "+name)
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	run(t, dir, nil, "init", "-b", "main")
	run(t, dir, nil, "config", "user.email", "test@test.com")
	run(t, dir, nil, "config", "user.name", "Test User")
	run(t, dir, nil, "config", "commit.gpgsign", "false")
	commitAt(t, dir, "README.md", time.Now().Add(-96*time.Hour))
	return dir
}

func quietContext() context.Context {
	return log.WithLogger(context.Background(), log.New(&bytes.Buffer{}, false, true))
}

func TestListBranchesIntegration(t *testing.T) {
	repo := initRepo(t)
	ctx := quietContext()

	// merged: branched, committed, fast-forwarded back into main
	run(t, repo, nil, "checkout", "-q", "-b", "merged")
	commitAt(t, repo, "merged.txt", time.Now().Add(-48*time.Hour))
	run(t, repo, nil, "checkout", "-q", "main")
	run(t, repo, nil, "merge", "-q", "--no-edit", "merged")

	// unmerged: commit only on the branch
	run(t, repo, nil, "checkout", "-q", "-b", "unmerged")
	commitAt(t, repo, "unmerged.txt", time.Now().Add(-time.Hour))
	run(t, repo, nil, "checkout", "-q", "main")

	branches, err := ListBranches(ctx, repo, "")
	if err != nil {
		t.Fatalf("ListBranches failed: %v", err)
	}
	if len(branches) != 3 {
		t.Fatalf("expected 3 branches, got %d: %+v", len(branches), branches)
	}

	byName := map[string]Branch{}
	for _, b := range branches {
		byName[b.Name] = b
	}

	if !byName["main"].IsCurrent {
		t.Error("main should be the current branch")
	}
	if !byName["merged"].Merged {
		t.Error("merged should be reported as merged")
	}
	if byName["unmerged"].Merged {
		t.Error("unmerged should not be reported as merged")
	}

	// Newest commit first.
	if branches[0].Name != "unmerged" {
		t.Errorf("expected unmerged first (newest), got %s", branches[0].Name)
	}
	if branches[len(branches)-1].LastCommit.After(branches[0].LastCommit) {
		t.Error("branches are not sorted newest first")
	}
}

func TestListBranchesAgainstBase(t *testing.T) {
	repo := initRepo(t)
	ctx := quietContext()

	run(t, repo, nil, "branch", "feature")
	run(t, repo, nil, "checkout", "-q", "-b", "ahead")
	commitAt(t, repo, "ahead.txt", time.Now().Add(-time.Hour))

	// Checked against main, feature (same tip) is merged and ahead is not.
	branches, err := ListBranches(ctx, repo, "main")
	if err != nil {
		t.Fatalf("ListBranches failed: %v", err)
	}

	byName := map[string]Branch{}
	for _, b := range branches {
		byName[b.Name] = b
	}
	if !byName["feature"].Merged {
		t.Error("feature should be merged into main")
	}
	if byName["ahead"].Merged {
		t.Error("ahead should not be merged into main")
	}
}

func TestCurrentBranchAndDelete(t *testing.T) {
	repo := initRepo(t)
	ctx := quietContext()

	run(t, repo, nil, "branch", "doomed")

	current, err := CurrentBranch(ctx, repo)
	if err != nil {
		t.Fatalf("CurrentBranch failed: %v", err)
	}
	if current != "main" {
		t.Errorf("expected current branch main, got %q", current)
	}

	if err := DeleteBranch(ctx, repo, "doomed"); err != nil {
		t.Fatalf("DeleteBranch failed: %v", err)
	}
	if err := DeleteBranch(ctx, repo, "doomed"); err == nil {
		t.Error("deleting a missing branch should fail")
	}
}

func TestCurrentBranchDetached(t *testing.T) {
	repo := initRepo(t)
	ctx := quietContext()

	run(t, repo, nil, "checkout", "-q", "--detach")

	current, err := CurrentBranch(ctx, repo)
	if err != nil {
		t.Fatalf("CurrentBranch failed: %v", err)
	}
	if current != "" {
		t.Errorf("expected empty current branch on detached HEAD, got %q", current)
	}
}

func TestTopLevelOutsideRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := TopLevel(quietContext(), dir)
	if !errors.Is(err, ErrNotRepository) {
		t.Errorf("TopLevel outside a repo = %v, want ErrNotRepository", err)
	}
}
