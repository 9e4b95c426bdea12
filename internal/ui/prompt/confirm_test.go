package prompt

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyPress(key string) tea.Msg {
	switch key {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestConfirmModel_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		confirmed bool
		done      bool
		cancelled bool
	}{
		{"y confirms", "y", true, true, false},
		{"Y confirms", "Y", true, true, false},
		{"n declines", "n", false, true, false},
		{"N declines", "N", false, true, false},
		{"enter defaults no", "enter", false, true, false},
		{"ctrl+c cancels", "ctrl+c", false, true, true},
		{"esc cancels", "esc", false, true, true},
		{"q cancels", "q", false, true, true},
		{"unhandled is no-op", "x", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := confirmModel{prompt: "Delete 2 branches?"}
			updated, _ := m.Update(keyPress(tt.key))
			um := updated.(confirmModel)

			if um.confirmed != tt.confirmed {
				t.Errorf("confirmed = %v, want %v", um.confirmed, tt.confirmed)
			}
			if um.done != tt.done {
				t.Errorf("done = %v, want %v", um.done, tt.done)
			}
			if um.cancelled != tt.cancelled {
				t.Errorf("cancelled = %v, want %v", um.cancelled, tt.cancelled)
			}
		})
	}
}

func TestConfirmModel_View(t *testing.T) {
	t.Parallel()

	m := confirmModel{prompt: "Delete 2 branches?"}
	if view := m.View(); !strings.Contains(view, "[y/N]") {
		t.Errorf("View() = %q, want y/N prompt", view)
	}

	m.done = true
	if view := m.View(); view != "" {
		t.Errorf("View() after done = %q, want empty", view)
	}
}

func TestConfirmPlain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  ConfirmResult
	}{
		{"y confirms", "y\n", ConfirmResult{Confirmed: true}},
		{"yes confirms", "yes\n", ConfirmResult{Confirmed: true}},
		{"upper Y confirms", "Y\n", ConfirmResult{Confirmed: true}},
		{"n declines", "n\n", ConfirmResult{}},
		{"empty line declines", "\n", ConfirmResult{}},
		{"garbage declines", "whatever\n", ConfirmResult{}},
		{"EOF cancels", "", ConfirmResult{Cancelled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got, err := confirmPlain("Delete 2 branches?", strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatalf("confirmPlain() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("confirmPlain(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "[y/N]") {
				t.Errorf("prompt output = %q, want y/N", out.String())
			}
		})
	}
}
