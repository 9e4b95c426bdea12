// Package git provides git operations via shell commands.
//
// All operations use [os/exec] to call the git CLI directly rather than
// a Go git library. This approach is simpler, more reliable, and ensures
// the tool sees the same repository state the user's git does.
//
// # Branch Operations
//
//   - [ListBranches]: Enumerate local branches with merge status and
//     last-commit timestamps, newest first
//   - [CurrentBranch]: Name of the checked-out branch ("" when detached)
//   - [DeleteBranch]: Remove a local branch
//
// # Repository Operations
//
//   - [CheckGit]: Verify git is installed
//   - [TopLevel]: Locate the repository root for a working directory
package git
