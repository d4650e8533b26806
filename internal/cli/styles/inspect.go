package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NodeClass is how the classifier sees one node.
type NodeClass struct {
	Depth       int
	Label       string
	Actionable  bool
	Group       bool
	Interesting bool
	Visible     bool
}

// InspectRenderer renders the output of the inspect command.
type InspectRenderer struct {
	theme *Theme
}

func NewInspectRenderer(theme *Theme) *InspectRenderer {
	return &InspectRenderer{theme: theme}
}

// Render prints the group decomposition followed by per-node classification.
func (r *InspectRenderer) Render(path, groups string, nodes []NodeClass) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Tree %s\n\n", iconStyle.Render(IconDesktop), r.theme.Subtle.Render(path))
	sb.WriteString(r.theme.BoxHeader.Render("Groups"))
	sb.WriteString("\n")
	sb.WriteString(strings.TrimRight(groups, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(r.theme.BoxHeader.Render("Classification"))
	for _, n := range nodes {
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("  ", n.Depth))
		if n.Interesting {
			sb.WriteString(r.theme.Normal.Render(n.Label))
		} else {
			sb.WriteString(r.theme.Subtle.Render(n.Label))
		}
		if flags := r.flags(n); flags != "" {
			sb.WriteString(" " + flags)
		}
	}
	return sb.String()
}

func (r *InspectRenderer) flags(n NodeClass) string {
	var badges []string
	if n.Group {
		badges = append(badges, r.theme.AccentBadge("group"))
	}
	if n.Actionable {
		badges = append(badges, r.theme.MutedBadge("actionable"))
	}
	if !n.Visible {
		badges = append(badges, r.theme.WarningStyle.Render("hidden"))
	}
	return strings.Join(badges, " ")
}
