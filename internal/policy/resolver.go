package policy

import (
	"fmt"
	"time"
)

// Verdict is the per-branch outcome.
type Verdict int

const (
	// Eligible branches are deletion candidates.
	Eligible Verdict = iota
	// Protected branches are excluded by policy, independent of merge or
	// age status.
	Protected
	// FilteredOut branches are kept by the merged/age filters but are
	// not protected.
	FilteredOut
)

func (v Verdict) String() string {
	switch v {
	case Eligible:
		return "eligible"
	case Protected:
		return "protected"
	case FilteredOut:
		return "filtered out"
	}
	return "unknown"
}

// Decision is the outcome for one branch with a human-readable reason.
type Decision struct {
	Verdict Verdict
	Reason  string
}

// Resolve decides whether a branch is protected. Pure: same inputs,
// same decision. First match wins in the documented rule order.
func (p *Policy) Resolve(name string, isCurrent bool) Decision {
	// Hard guard, deliberately not part of the configurable rule list.
	if isCurrent {
		return Decision{Verdict: Protected, Reason: "current branch"}
	}

	if p.exact[name] {
		return Decision{Verdict: Protected, Reason: "protected name"}
	}

	for _, m := range p.globs {
		if m.Matches(name) {
			return Decision{Verdict: Protected, Reason: fmt.Sprintf("matches pattern %s", m.Pattern())}
		}
	}

	for _, m := range p.regexes {
		if m.Matches(name) {
			return Decision{Verdict: Protected, Reason: fmt.Sprintf("matches pattern %s", m.Pattern())}
		}
	}

	if p.keep != nil && p.keep.Matches(name) {
		return Decision{Verdict: Protected, Reason: "matches keep-pattern"}
	}

	return Decision{Verdict: Eligible}
}

// Filter annotates an Eligible branch against the merged/age filters.
// "Younger than threshold" means the last commit is more recent than
// now minus the threshold.
func (p *Policy) Filter(merged bool, lastCommit, now time.Time) Decision {
	if p.mergedOnly && !merged {
		return Decision{Verdict: FilteredOut, Reason: "not merged"}
	}
	if p.olderThan > 0 && lastCommit.After(now.Add(-p.olderThan)) {
		return Decision{Verdict: FilteredOut, Reason: "younger than threshold"}
	}
	return Decision{Verdict: Eligible}
}
