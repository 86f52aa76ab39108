package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	wroteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	featureStyle = lipgloss.NewStyle().Bold(true)
	tagStyle     = lipgloss.NewStyle().Faint(true)
)

func WroteLine(w io.Writer, path string) {
	fmt.Fprintln(w, wroteStyle.Render("wrote")+"  "+path)
}

func SkipLine(w io.Writer, path string, err error) {
	fmt.Fprintln(w, skipStyle.Render("skip")+"   "+path+": "+err.Error())
}

func SummaryLine(w io.Writer, features, skipped int) {
	if skipped == 0 {
		fmt.Fprintf(w, "reported %d features\n", features)
		return
	}
	fmt.Fprintf(w, "reported %d features, skipped %d files\n", features, skipped)
}

func FeatureRow(w io.Writer, name string, tags []string) {
	fmt.Fprintln(w, featureStyle.Render(name)+tagSuffix(tags))
}

// ScenarioRow prints an indented scenario, padding the name to nameWidth so
// tags line up.
func ScenarioRow(w io.Writer, location, name string, tags []string, locWidth, nameWidth int) {
	line := fmt.Sprintf("  %-*s  %-*s", locWidth, location, nameWidth, name)
	fmt.Fprintln(w, strings.TrimRight(line+tagSuffix(tags), " "))
}

func tagSuffix(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "  " + tagStyle.Render(strings.Join(tags, " "))
}
