package repo

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jdelgad/bbcli/internal/bitbucket"
)

// RenderTable writes repositories as a three-column table.
func RenderTable(w io.Writer, repos []bitbucket.Repository) error {
	if len(repos) == 0 {
		_, err := fmt.Fprintln(w, "No repositories found.")
		return err
	}

	// Define colors
	purple := lipgloss.Color("99")
	gray := lipgloss.Color("245")
	lightGray := lipgloss.Color("241")

	// Define styles
	headerStyle := lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	oddRowStyle := cellStyle.Foreground(gray)
	evenRowStyle := cellStyle.Foreground(lightGray)

	rows := make([][]string, len(repos))
	for i, r := range repos {
		owner, name := splitDisplayName(r.Name)
		rows[i] = []string{name, owner, r.CloneURL}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers("Repository", "Owner", "URL").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t)
	return err
}

// RenderList writes repositories as a flat comma-separated list of full
// names, or of slugs when slugOnly is set.
func RenderList(w io.Writer, repos []bitbucket.Repository, slugOnly bool) error {
	parts := make([]string, len(repos))
	for i, r := range repos {
		if slugOnly {
			parts[i] = r.Slug
		} else {
			parts[i] = r.FullName
		}
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, ","))
	return err
}

// splitDisplayName splits "<owner> / <repo>" into its two halves.
// Names without the separator come back with an empty owner.
func splitDisplayName(display string) (owner, name string) {
	parts := strings.SplitN(display, " / ", 2)
	if len(parts) != 2 {
		return "", display
	}
	return parts[0], parts[1]
}
