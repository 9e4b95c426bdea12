// Package config handles loading and merging of git-tidy configuration.
//
// Configuration is read from two TOML layers plus CLI flags:
//
//   - Global: ~/.config/git-tidy/config.toml (override the path with the
//     GIT_TIDY_CONFIG environment variable)
//   - Project: .git-tidy.toml at the repository root
//
// # Merge Priority
//
// CLI flags > project file > global file > built-in defaults. The
// protected_branches.defaults list is replaced by the highest layer that
// sets it; additional and patterns are unioned across layers.
//
// # Schema
//
//	[protected_branches]
//	defaults = ["master", "develop", "main"]
//	additional = ["release/*", "hotfix/*"]   # names; * entries are globs
//	patterns = ["^feature/.*-wip$"]          # regular expressions
//
//	[filters]
//	base_branch = "main"   # merge-status base (default: current branch)
//
// Invalid glob or regex patterns fail at load time with an error naming
// the offending pattern and the file it came from.
package config
