// Package ui renders the branch report and owns the interactive pieces
// (spinner, confirmation) of git-tidy.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/raphi011/git-tidy/internal/git"
	"github.com/raphi011/git-tidy/internal/ui/styles"
)

// KeptBranch pairs a branch with the reason it is kept.
type KeptBranch struct {
	Branch git.Branch
	Reason string
}

// FormatBranchReport renders the preview: deletion candidates first,
// then protected branches, then branches kept by the merged/age filters.
// Filtered branches are kept but not protected; the report keeps the two
// groups apart.
func FormatBranchReport(toDelete []git.Branch, protected, filtered []KeptBranch, now time.Time) string {
	var b strings.Builder

	b.WriteString(styles.Bold.Render("Branches to delete:"))
	b.WriteString("\n")
	if len(toDelete) == 0 {
		b.WriteString(styles.MutedStyle.Render("   (none)"))
		b.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(toDelete))
		for _, branch := range toDelete {
			rows = append(rows, []string{
				"   " + styles.ErrorStyle.Render("✗"),
				branch.Name,
				styles.MutedStyle.Render(FormatAge(branch.LastCommit, now)),
				styles.MutedStyle.Render(mergedLabel(branch.Merged)),
			})
		}
		b.WriteString(renderTable(rows))
	}

	if len(protected) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Bold.Render("Protected branches:"))
		b.WriteString("\n")
		b.WriteString(renderTable(keptRows(protected, styles.SuccessStyle.Render("✓"))))
	}

	if len(filtered) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Bold.Render("Kept by filters:"))
		b.WriteString("\n")
		b.WriteString(renderTable(keptRows(filtered, styles.WarningStyle.Render("-"))))
	}

	return b.String()
}

func keptRows(kept []KeptBranch, mark string) [][]string {
	rows := make([][]string, 0, len(kept))
	for _, k := range kept {
		rows = append(rows, []string{
			"   " + mark,
			k.Branch.Name,
			styles.MutedStyle.Render("(" + k.Reason + ")"),
		})
	}
	return rows
}

func mergedLabel(merged bool) string {
	if merged {
		return "merged"
	}
	return "unmerged"
}

// renderTable renders rows as a borderless table with aligned columns.
func renderTable(rows [][]string) string {
	t := table.New().
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().PaddingRight(2)
		})

	return t.String() + "\n"
}

// FormatSummary renders the final line of a clean run.
func FormatSummary(deleted, failed, skipped int) string {
	var b strings.Builder

	b.WriteString(styles.SuccessStyle.Bold(true).Render(fmt.Sprintf("Deleted %d branches.", deleted)))
	if skipped > 0 {
		b.WriteString(styles.WarningStyle.Render(fmt.Sprintf(" Skipped %d.", skipped)))
	}
	if failed > 0 {
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf(" Failed to delete %d.", failed)))
	}
	b.WriteString("\n")

	return b.String()
}
