package tui

import (
	"fmt"
	"strings"
)

// renderDetail renders the detail view for a single project.
func renderDetail(m *Model) string {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return "No project selected."
	}

	p := m.filtered[m.cursor]

	var b strings.Builder

	label := p.Name
	if label == "" {
		label = p.Path
	}
	b.WriteString(fmt.Sprintf(" %s · %s\n", kindLabelStyle.Render(p.Label), label))
	b.WriteString(headerStyle.Render(strings.Repeat("─", m.width)))
	b.WriteString("\n")

	b.WriteString(" " + pathStyle.Render(p.Path) + "\n\n")

	if p.Focus != "" {
		b.WriteString(fmt.Sprintf(" %s %s\n", subtleStyle.Render("Focus:"), p.Focus))
	}
	if !p.LastModified.IsZero() {
		b.WriteString(fmt.Sprintf(" %s %s\n", subtleStyle.Render("Last modified:"), p.LastModified.Format("2006-01-02 15:04")))
	}
	b.WriteString(fmt.Sprintf(" %s %s\n\n", subtleStyle.Render("Reclaimable:"), artifactStyle.Render(prettySize(p.ArtifactBytes))))

	if len(p.Breakdown) > 0 {
		b.WriteString(" " + sectionHeaderStyle.Render("Contents") + "\n")
		for _, e := range p.Breakdown {
			marker := "  "
			name := e.Name
			if e.IsArtifact {
				marker = artifactStyle.Render("* ")
				name = artifactStyle.Render(e.Name)
			}
			b.WriteString(fmt.Sprintf("   %s%-30s %8s\n", marker, name, prettySize(e.Bytes)))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(" esc back  n/p next/prev  q quit"))
	b.WriteString("\n")

	return b.String()
}
