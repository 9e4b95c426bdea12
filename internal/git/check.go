package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGitNotFound indicates git is not installed or not in PATH.
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// ErrNotRepository indicates the working directory is not inside a git
// repository.
var ErrNotRepository = fmt.Errorf("not a git repository")

// CheckGit verifies that git is available in PATH.
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// TopLevel returns the root directory of the repository containing dir.
// Returns an error if dir is not inside a git repository.
func TopLevel(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: run git-tidy inside one (%v)", ErrNotRepository, err)
	}
	return strings.TrimSpace(string(out)), nil
}
