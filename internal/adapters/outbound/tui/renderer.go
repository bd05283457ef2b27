package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stylegate/stylegate/internal/domain"
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
			Width(68)

	dimStyle           = lipgloss.NewStyle().Foreground(dim)
	faintStyle         = lipgloss.NewStyle().Foreground(faint)
	passStyle          = lipgloss.NewStyle().Foreground(success)
	failStyle          = lipgloss.NewStyle().Foreground(danger)
	warnStyle          = lipgloss.NewStyle().Foreground(warning)
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine      = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a Report as a styled terminal summary. Patch bodies
// stay in the Markdown surface; the terminal view lists offending files and
// validator failures.
func RenderReport(r *domain.Report) string {
	var b strings.Builder

	title := headerStyle.Render("stylegate")
	subtitle := dimStyle.Render("Code Style Check")

	var verdict string
	if r.Clean() {
		verdict = passStyle.Bold(true).Render("PASS")
	} else {
		verdict = failStyle.Bold(true).Render("FAIL")
	}

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict))
	b.WriteString("\n")

	renderViolations(&b, r.Violations)
	renderFailures(&b, r.Failures)

	b.WriteString("\n")
	if r.Clean() {
		b.WriteString("  " + passStyle.Render("All checked files match the validator's output.") + "\n")
	} else {
		b.WriteString("  " + separatorLine + "\n")
		b.WriteString("  " + hintStyle.Render(fmt.Sprintf("Run %s on the offending files to fix the issues.", r.Validator)) + "\n")
	}

	return b.String()
}

func renderViolations(b *strings.Builder, violations []domain.Violation) {
	if len(violations) == 0 {
		return
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n",
		sectionHeaderStyle.Render("Style Violations"),
		dimStyle.Render(fmt.Sprintf("(%d)", len(violations))),
	)

	for _, v := range violations {
		hunks := strings.Count(v.Patch, "@@") / 2
		line := fmt.Sprintf("    %s %s", failStyle.Render("●"), titleStyle.Render(v.Path))
		if hunks > 0 {
			line += "  " + faintStyle.Render(fmt.Sprintf("%d hunk(s)", hunks))
		}
		b.WriteString(line + "\n")
	}
}

func renderFailures(b *strings.Builder, failures []domain.Failure) {
	if len(failures) == 0 {
		return
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n",
		sectionHeaderStyle.Render("Validator Failures"),
		dimStyle.Render(fmt.Sprintf("(%d)", len(failures))),
	)

	for _, f := range failures {
		b.WriteString(fmt.Sprintf("    %s %s  %s\n",
			warnStyle.Render("●"),
			titleStyle.Render(f.Path),
			dimStyle.Render(f.Message),
		))
	}
}
