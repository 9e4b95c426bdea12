package git

import (
	"testing"
	"time"
)

func TestParseBranches(t *testing.T) {
	t.Parallel()

	out := []byte("main\t1700000000\t*\nfeature/a\t1690000000\t\nrelease/1.0\t1680000000\t \n")

	branches, err := parseBranches(out)
	if err != nil {
		t.Fatalf("parseBranches() error = %v", err)
	}
	if len(branches) != 3 {
		t.Fatalf("parseBranches() returned %d branches, want 3", len(branches))
	}

	if branches[0].Name != "main" || !branches[0].IsCurrent {
		t.Errorf("branches[0] = %+v, want current main", branches[0])
	}
	if branches[1].Name != "feature/a" || branches[1].IsCurrent {
		t.Errorf("branches[1] = %+v, want non-current feature/a", branches[1])
	}
	if want := time.Unix(1690000000, 0); !branches[1].LastCommit.Equal(want) {
		t.Errorf("feature/a LastCommit = %v, want %v", branches[1].LastCommit, want)
	}
	if branches[2].IsCurrent {
		t.Error("release/1.0 should not be current")
	}
}

func TestParseBranches_Empty(t *testing.T) {
	t.Parallel()

	branches, err := parseBranches([]byte("\n"))
	if err != nil {
		t.Fatalf("parseBranches() error = %v", err)
	}
	if len(branches) != 0 {
		t.Errorf("parseBranches() = %v, want empty", branches)
	}
}

func TestParseBranches_BadTimestamp(t *testing.T) {
	t.Parallel()

	_, err := parseBranches([]byte("main\tnotanumber\t*\n"))
	if err == nil {
		t.Error("parseBranches() = nil error, want timestamp error")
	}
}

func TestParseBranches_MalformedLine(t *testing.T) {
	t.Parallel()

	_, err := parseBranches([]byte("just-a-name\n"))
	if err == nil {
		t.Error("parseBranches() = nil error, want format error")
	}
}

func TestParseMergedOutput(t *testing.T) {
	t.Parallel()

	out := []byte("* main\n  feature/a\n+ feature/worktree\n  \n")

	merged := parseMergedOutput(out)

	for _, name := range []string{"main", "feature/a", "feature/worktree"} {
		if !merged[name] {
			t.Errorf("merged[%q] = false, want true", name)
		}
	}
	if len(merged) != 3 {
		t.Errorf("merged set has %d entries, want 3: %v", len(merged), merged)
	}
}

func TestParseMergedOutput_DetachedHead(t *testing.T) {
	t.Parallel()

	out := []byte("* (no branch)\n  main\n")

	merged := parseMergedOutput(out)
	if merged["(no branch)"] {
		t.Error("detached HEAD marker should not appear in merged set")
	}
	if !merged["main"] {
		t.Error("merged[main] = false, want true")
	}
}
