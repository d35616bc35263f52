package tui

import (
	"fmt"
	"strings"
)

// renderList renders the project list view.
func renderList(m *Model) string {
	var b strings.Builder

	title := titleStyle.Render(fmt.Sprintf(" kondo — %d projects", len(m.filtered)))
	if len(m.projects) != len(m.filtered) {
		title += subtleStyle.Render(fmt.Sprintf(" (of %d total)", len(m.projects)))
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(strings.Repeat("─", m.width)))
	b.WriteString("\n")

	filterLine := subtleStyle.Render(" Filter: ") + "[" + m.filter.activeKind() + "]"
	if m.filter.search != "" {
		filterLine += subtleStyle.Render("  Search: ") + "[" + m.filter.search + "]"
	}
	b.WriteString(filterLine)
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(subtleStyle.Render("  No projects match the current filters.\n"))
	} else {
		visibleLines := m.height - 8
		if visibleLines < 1 {
			visibleLines = 1
		}
		start := m.cursor - visibleLines/2
		if start < 0 {
			start = 0
		}
		end := start + visibleLines
		if end > len(m.filtered) {
			end = len(m.filtered)
			start = end - visibleLines
			if start < 0 {
				start = 0
			}
		}

		for i := start; i < end; i++ {
			line := renderProjectLine(m.filtered[i], i == m.cursor)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.filter.searching {
		b.WriteString("\n")
		b.WriteString(" Search: " + m.filter.search + "█")
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(" ↑↓ navigate  enter detail  / search  f filter kind  q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderProjectLine renders a single project line in the list.
func renderProjectLine(p Project, selected bool) string {
	badge := kindBadge(p.Kind)

	label := p.Name
	if label == "" {
		label = p.Path
	}
	if p.Focus != "" {
		label = fmt.Sprintf("%s (%s)", label, p.Focus)
	}
	name := pathStyle.Render(fmt.Sprintf("%-40s", truncate(label, 40)))

	size := prettySize(p.ArtifactBytes)

	line := fmt.Sprintf(" %s  %s  %8s", badge, name, size)

	if selected {
		return selectedStyle.Render("▸") + line
	}
	return " " + line
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
