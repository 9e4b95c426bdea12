// Package policy decides, per branch, whether git-tidy may delete it.
//
// A [Policy] is compiled once per run from the merged configuration and
// the CLI flags, so every branch in a run is judged against the same
// snapshot. [Policy.Resolve] applies the protection rules in a fixed
// order (the order is part of the contract):
//
//  1. current branch (unconditional, not overridable by configuration)
//  2. exact protected names
//  3. glob patterns (anchored, * does not cross /)
//  4. config regex patterns
//  5. the --keep-pattern regex
//
// Branches surviving all five are Eligible; [Policy.Filter] then
// annotates them FilteredOut when the merged-only or age filters apply.
// FilteredOut branches are kept but are not Protected; the distinction
// shows up in the report.
package policy
