package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// ConfirmResult holds the result of a confirmation prompt.
// Cancelled is set when the user aborts (ctrl+c, esc, EOF); no deletion
// may happen after a cancellation.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			// Default to no
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s [y/N] ", m.prompt)
}

// Confirm shows a yes/no prompt and returns the user's choice.
// The default answer is "no" if the user presses enter without input.
func Confirm(prompt string) (ConfirmResult, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return confirmPlain(prompt, os.Stdin, os.Stderr)
	}

	model := confirmModel{prompt: prompt}
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	m := finalModel.(confirmModel)
	return ConfirmResult{
		Confirmed: m.confirmed,
		Cancelled: m.cancelled,
	}, nil
}

// confirmPlain reads a single y/N line, for piped stdin.
// EOF counts as a cancellation, not a "no": the caller must be able to
// tell an explicit decline from an aborted run.
func confirmPlain(prompt string, in io.Reader, out io.Writer) (ConfirmResult, error) {
	fmt.Fprintf(out, "%s [y/N] ", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return ConfirmResult{Cancelled: true}, nil
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return ConfirmResult{Confirmed: answer == "y" || answer == "yes"}, nil
}
