package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/IanSimon23/doccheck/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(64)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	ruleStyle     = lipgloss.NewStyle().Foreground(dim)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 60))
)

// RenderFindings renders a validation run as a styled terminal report.
func RenderFindings(projectName string, findings []domain.Finding) string {
	var b strings.Builder

	title := headerStyle.Render("doccheck")
	subtitle := dimStyle.Render("documentation drift report")
	nameLine := titleStyle.Render(projectName)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + nameLine))
	b.WriteString("\n\n")

	if len(findings) == 0 {
		b.WriteString("  " + passStyle.Render("Documentation matches the project. No drift found.") + "\n")
		return b.String()
	}

	errors, warnings, infos := domain.CountSeverities(findings)
	b.WriteString("  " + titleStyle.Render("Findings") + "  ")
	if errors > 0 {
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", errors)) + "  ")
	}
	if warnings > 0 {
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", warnings)) + "  ")
	}
	if infos > 0 {
		b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", infos)))
	}
	b.WriteString("\n\n")

	for _, f := range findings {
		renderFinding(&b, f)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")
	if errors > 0 {
		b.WriteString("  " + errorTagStyle.Render("Documentation contradicts the project state.") + "\n")
	}

	return b.String()
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	b.WriteString("  ")
	b.WriteString(severityTag(f.Severity))
	b.WriteString("  ")
	b.WriteString(f.Message)
	b.WriteString("  ")
	b.WriteString(ruleStyle.Render("[" + string(f.Rule) + "]"))
	b.WriteString("\n")
	if f.Suggestion != "" {
		b.WriteString("         " + hintStyle.Render(f.Suggestion) + "\n")
	}
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("ERROR")
	case domain.SeverityWarning:
		return warnTagStyle.Render(" WARN")
	default:
		return infoTagStyle.Render(" INFO")
	}
}
