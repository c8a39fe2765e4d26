// Package console provides styled terminal output and interactive prompts
// for the prodkit CLI.
//
// All user-facing messages go through the Format* helpers so that colors and
// symbols stay consistent across commands: success in green, errors in red,
// warnings in yellow, informational text in cyan. Interactive prompts are
// built on charmbracelet/huh and refuse to run without a TTY.
package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle     = lipgloss.NewStyle().Faint(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("14")).
			Padding(0, 2)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true)
)

// FormatSuccessMessage formats a message with a green checkmark.
func FormatSuccessMessage(message string) string {
	return successStyle.Render("✓") + " " + message
}

// FormatErrorMessage formats a message with a red cross.
func FormatErrorMessage(message string) string {
	return errorStyle.Render("✗") + " " + errorStyle.Render(message)
}

// FormatWarningMessage formats a message with a yellow warning sign.
func FormatWarningMessage(message string) string {
	return warningStyle.Render("⚠") + " " + message
}

// FormatInfoMessage formats an informational message in cyan.
func FormatInfoMessage(message string) string {
	return infoStyle.Render(message)
}

// FormatProgressMessage formats a progress step with a cyan arrow.
func FormatProgressMessage(message string) string {
	return infoStyle.Render("→") + " " + message
}

// FormatDimMessage formats secondary text in a faint style.
func FormatDimMessage(message string) string {
	return dimStyle.Render(message)
}

// FormatErrorWithSuggestions formats an error followed by actionable
// suggestions, one per line.
func FormatErrorWithSuggestions(message string, suggestions []string) string {
	var sb strings.Builder
	sb.WriteString(FormatErrorMessage(message))
	for _, suggestion := range suggestions {
		sb.WriteString("\n  ")
		sb.WriteString(dimStyle.Render("• " + suggestion))
	}
	return sb.String()
}

// RenderPanel renders a bordered panel with an optional title, matching the
// welcome and summary boxes shown by init and version.
func RenderPanel(title, body string) string {
	content := body
	if title != "" {
		content = panelTitleStyle.Render(title) + "\n\n" + body
	}
	return panelStyle.Render(content)
}

// PrintPanel writes a panel to stderr surrounded by blank lines.
func PrintPanel(title, body string) {
	fmt.Fprintf(os.Stderr, "\n%s\n\n", RenderPanel(title, body))
}

// LogVerbose prints a dim message to stderr when verbose mode is on.
func LogVerbose(verbose bool, message string) {
	if verbose {
		fmt.Fprintln(os.Stderr, dimStyle.Render(message))
	}
}
