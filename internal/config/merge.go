package config

// Merge folds config layers into base, lowest priority first, returning
// a new Config without mutating any layer. Nil layers are skipped. The
// result is built once per run so every branch is judged against the
// identical policy snapshot.
//
// Scalar fields and the defaults list are replaced by the highest layer
// that sets them; additional and patterns are unioned.
func Merge(base Config, layers ...*Config) Config {
	merged := base
	merged.ProtectedBranches.Defaults = cloneStrings(base.ProtectedBranches.Defaults)
	merged.ProtectedBranches.Additional = cloneStrings(base.ProtectedBranches.Additional)
	merged.ProtectedBranches.Patterns = cloneStrings(base.ProtectedBranches.Patterns)

	for _, layer := range layers {
		if layer == nil {
			continue
		}

		if layer.ProtectedBranches.Defaults != nil {
			merged.ProtectedBranches.Defaults = cloneStrings(layer.ProtectedBranches.Defaults)
		}
		if len(layer.ProtectedBranches.Additional) > 0 {
			merged.ProtectedBranches.Additional = appendUnique(
				merged.ProtectedBranches.Additional, layer.ProtectedBranches.Additional)
		}
		if len(layer.ProtectedBranches.Patterns) > 0 {
			merged.ProtectedBranches.Patterns = appendUnique(
				merged.ProtectedBranches.Patterns, layer.ProtectedBranches.Patterns)
		}

		if layer.Filters.BaseBranch != "" {
			merged.Filters.BaseBranch = layer.Filters.BaseBranch
		}
	}

	return merged
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// appendUnique appends items from extra to base, skipping duplicates.
// Returns a new slice (never mutates base).
func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, v := range base {
		seen[v] = true
	}

	result := make([]string, len(base), len(base)+len(extra))
	copy(result, base)

	for _, v := range extra {
		if !seen[v] {
			result = append(result, v)
			seen[v] = true
		}
	}

	return result
}
