package policy

import (
	"fmt"
	"strings"
	"time"

	"github.com/raphi011/git-tidy/internal/config"
)

// Options carries the CLI-supplied parts of the effective policy.
type Options struct {
	KeepPattern string        // additional protection regex, "" = none
	MergedOnly  bool          // keep unmerged branches
	OlderThan   time.Duration // keep branches younger than this, 0 = off
}

// Policy is the effective protection policy for one run, immutable once
// compiled.
type Policy struct {
	exact      map[string]bool
	globs      []Matcher
	regexes    []Matcher
	keep       *Matcher
	mergedOnly bool
	olderThan  time.Duration
}

// Compile builds a Policy from the merged configuration and options.
// Config patterns were validated at load time; the keep-pattern is
// validated here since it arrives straight from the flag.
func Compile(cfg config.Config, opts Options) (*Policy, error) {
	p := &Policy{
		exact:      make(map[string]bool),
		mergedOnly: opts.MergedOnly,
		olderThan:  opts.OlderThan,
	}

	for _, name := range cfg.ProtectedNames() {
		if strings.Contains(name, "*") {
			glob, err := GlobMatcher(name)
			if err != nil {
				return nil, err
			}
			p.globs = append(p.globs, glob)
			continue
		}
		p.exact[name] = true
	}

	for _, pattern := range cfg.ProtectedBranches.Patterns {
		re, err := RegexMatcher(pattern)
		if err != nil {
			return nil, err
		}
		p.regexes = append(p.regexes, re)
	}

	if opts.KeepPattern != "" {
		keep, err := RegexMatcher(opts.KeepPattern)
		if err != nil {
			return nil, fmt.Errorf("in --keep-pattern: %w", err)
		}
		p.keep = &keep
	}

	return p, nil
}
