package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, stack keys.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for created files and the banner.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings shown on stdout.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs and headings.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleCommand styles shell commands in next-step hints.
	StyleCommand = lipgloss.NewStyle().Foreground(ColorGreen)

	styleBanner = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimGray)

	styleBox = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimGray)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatBanner renders the welcome banner shown before the first prompt.
func FormatBanner(title, subtitle string) string {
	body := title
	if subtitle != "" {
		body += "\n" + StyleDim.Render(subtitle)
	}
	return styleBanner.Render(body)
}

// FormatNextSteps renders the follow-up commands in a bordered box.
func FormatNextSteps(commands []string) string {
	lines := make([]string, 0, len(commands)+1)
	lines = append(lines, StyleAction.Render("Next steps:"))
	for _, c := range commands {
		lines = append(lines, "  "+StyleCommand.Render(c))
	}
	return styleBox.Render(strings.Join(lines, "\n"))
}

// FormatStackLine renders one row of the stack listing.
// Format: <key>  <name> (<description>)
func FormatStackLine(key, name, description string, keyWidth int) string {
	padding := keyWidth - len(key)
	if padding < 0 {
		padding = 0
	}
	return StyleNoun.Render(key) + strings.Repeat(" ", padding+2) +
		name + " " + StyleDim.Render(fmt.Sprintf("(%s)", description))
}

// FormatSummary renders the completion line for a generated project,
// e.g. "Created my-app with 27 files".
func FormatSummary(project string, files int) string {
	p := message.NewPrinter(language.English)
	noun := "files"
	if files == 1 {
		noun = "file"
	}
	return FormatCheckmark(StyleSummary.Render(
		p.Sprintf("Created %s with %d %s", StyleNoun.Render(project), files, noun)))
}
