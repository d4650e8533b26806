package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// FrameNode is one row of the simulated accessibility tree.
type FrameNode struct {
	Depth int
	Label string
	// Primary marks the node under the primary focus ring.
	Primary bool
	// Preview marks the node under the preview ring.
	Preview bool
	// HostFocus marks the node holding host input focus.
	HostFocus bool
}

// SimulatorFrame is everything the simulator shows for one refresh.
type SimulatorFrame struct {
	Mode      string
	AutoScan  bool
	Interval  time.Duration
	Nodes     []FrameNode
	Focused   string
	Group     string
	Menu      []string
	MenuFocus int
	PointScan bool
	Cursor    string
	Keyboard  bool
	Events    []string
	Status    string
}

// SimulatorRenderer draws simulator frames.
type SimulatorRenderer struct {
	theme *Theme
}

func NewSimulatorRenderer(theme *Theme) *SimulatorRenderer {
	return &SimulatorRenderer{theme: theme}
}

// Render lays the tree next to the menu and event panes.
func (r *SimulatorRenderer) Render(f SimulatorFrame, width int, help string) string {
	header := r.renderHeader(f)
	tree := r.theme.Box.Render(r.renderTree(f))

	side := []string{r.theme.Box.Render(r.renderMenu(f))}
	if len(f.Events) > 0 {
		side = append(side, r.theme.Box.Render(r.renderEvents(f.Events)))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, tree, " ", lipgloss.JoinVertical(lipgloss.Left, side...))

	parts := []string{header, "", body}
	if f.Status != "" {
		parts = append(parts, "", r.theme.WarningStyle.Render(f.Status))
	}
	if help != "" {
		parts = append(parts, "", help)
	}

	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if width > 0 {
		out = lipgloss.NewStyle().MaxWidth(width).Render(out)
	}
	return out
}

func (r *SimulatorRenderer) renderHeader(f SimulatorFrame) string {
	badges := []string{r.theme.AccentBadge(f.Mode)}
	if f.AutoScan {
		badges = append(badges, r.theme.MutedBadge(fmt.Sprintf("%s auto %s", IconClock, f.Interval)))
	}
	if f.Keyboard {
		badges = append(badges, r.theme.MutedBadge(IconKeyboard+" keyboard"))
	}
	if f.PointScan {
		badges = append(badges, r.theme.MutedBadge(IconTarget+" "+f.Cursor))
	}

	line := r.theme.Title.Render("switchscan") + "  " + strings.Join(badges, " ")
	focus := fmt.Sprintf("%s %s  %s %s",
		r.theme.PrimaryFocus.Render(IconCursor), r.theme.Normal.Render(orDash(f.Focused)),
		r.theme.PreviewFocus.Render(IconGroup), r.theme.Subtle.Render(orDash(f.Group)),
	)
	return line + "\n" + focus
}

func (r *SimulatorRenderer) renderTree(f SimulatorFrame) string {
	var sb strings.Builder
	sb.WriteString(r.theme.Subtitle.Render(IconDesktop + " tree"))
	for _, n := range f.Nodes {
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("  ", n.Depth))

		marker := " "
		switch {
		case n.Primary:
			marker = r.theme.PrimaryFocus.Render(IconCursor)
		case n.Preview:
			marker = r.theme.PreviewFocus.Render(IconGroup)
		}
		sb.WriteString(marker + " ")

		label := n.Label
		if n.HostFocus {
			label += " *"
		}
		switch {
		case n.Primary:
			sb.WriteString(r.theme.PrimaryFocus.Render(label))
		case n.Preview:
			sb.WriteString(r.theme.PreviewFocus.Render(label))
		default:
			sb.WriteString(r.theme.Normal.Render(label))
		}
	}
	return sb.String()
}

func (r *SimulatorRenderer) renderMenu(f SimulatorFrame) string {
	title := r.theme.Subtitle.Render(IconMenu + " menu")
	if len(f.Menu) == 0 {
		return title + "\n" + r.theme.Subtle.Render("  closed")
	}

	lines := []string{title}
	for i, item := range f.Menu {
		if i == f.MenuFocus {
			lines = append(lines, r.theme.MenuSelected.Render(item))
			continue
		}
		lines = append(lines, r.theme.MenuItem.Render(item))
	}
	return strings.Join(lines, "\n")
}

func (r *SimulatorRenderer) renderEvents(events []string) string {
	lines := []string{r.theme.Subtitle.Render(IconInfo + " host")}
	for _, e := range events {
		lines = append(lines, r.theme.Subtle.Render(e))
	}
	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
