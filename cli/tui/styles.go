package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Kind badge colors, grouped loosely by ecosystem family.
	colorRust   = lipgloss.Color("#DE8144")
	colorJS     = lipgloss.Color("#F1C40F")
	colorJVM    = lipgloss.Color("#4169E1")
	colorGame   = lipgloss.Color("#9B59B6")
	colorNative = lipgloss.Color("#4CAF50")
	colorOther  = lipgloss.Color("#808080")

	// UI colors.
	colorTitle    = lipgloss.Color("#FFFFFF")
	colorSubtle   = lipgloss.Color("#666666")
	colorSelected = lipgloss.Color("#7D56F4")
	colorMatch    = lipgloss.Color("#FF6B6B")

	// Styles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle)

	subtleStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSelected)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorSubtle)

	kindLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#AAAAAA"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#88C0D0"))

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#A3BE8C"))

	artifactStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B48EAD"))
)

// kindStyle returns a styled badge color for a project kind.
func kindStyle(kind string) lipgloss.Style {
	var color lipgloss.Color
	switch kind {
	case "cargo":
		color = colorRust
	case "node", "turborepo":
		color = colorJS
	case "maven", "sbt", "gradle":
		color = colorJVM
	case "unity", "godot", "unreal":
		color = colorGame
	case "cmake", "zig", "swift":
		color = colorNative
	default:
		color = colorOther
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}

// kindBadge returns a fixed-width, styled kind string for list display.
func kindBadge(kind string) string {
	label := kind
	if len(label) > 8 {
		label = label[:8]
	}
	return kindStyle(kind).Render(padRight(label, 8))
}

func padRight(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	return s
}
