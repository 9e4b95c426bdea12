package policy

import (
	"fmt"
	"path"
	"regexp"
)

type matcherKind int

const (
	matchExact matcherKind = iota
	matchGlob
	matchRegex
)

// Matcher is one protection rule. The rule set is a small closed set of
// variants evaluated in a fixed order, so a tagged value is used instead
// of an interface hierarchy.
type Matcher struct {
	kind    matcherKind
	pattern string
	re      *regexp.Regexp
}

// ExactMatcher matches the branch name verbatim.
func ExactMatcher(name string) Matcher {
	return Matcher{kind: matchExact, pattern: name}
}

// GlobMatcher matches glob patterns anchored to the full branch name.
// * matches any run of characters but does not cross a / separator, so
// release/* matches release/1.0 but neither prerelease/1.0 nor release.
func GlobMatcher(pattern string) (Matcher, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return Matcher{}, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return Matcher{kind: matchGlob, pattern: pattern}, nil
}

// RegexMatcher matches a regular expression against the branch name.
func RegexMatcher(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Matcher{}, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
	}
	return Matcher{kind: matchRegex, pattern: pattern, re: re}, nil
}

// Matches reports whether the branch name matches this rule.
func (m Matcher) Matches(name string) bool {
	switch m.kind {
	case matchExact:
		return m.pattern == name
	case matchGlob:
		ok, err := path.Match(m.pattern, name)
		return err == nil && ok
	case matchRegex:
		return m.re.MatchString(name)
	}
	return false
}

// Pattern returns the source pattern, for reporting.
func (m Matcher) Pattern() string {
	return m.pattern
}
