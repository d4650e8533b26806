package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/switchscan/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

type configEntry struct {
	key   string
	value string
}

// RenderConfig renders the effective preferences grouped by section.
func (r *ConfigRenderer) RenderConfig(path string, cfg *config.Config) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valueStyle := r.theme.Normal

	sections := []struct {
		name    string
		entries []configEntry
	}{
		{"auto_scan", []configEntry{
			{"enabled", strconv.FormatBool(cfg.AutoScan.Enabled)},
			{"primary_speed_ms", strconv.Itoa(cfg.AutoScan.PrimarySpeedMs)},
			{"keyboard_speed_ms", strconv.Itoa(cfg.AutoScan.KeyboardSpeedMs)},
		}},
		{"point_scan", []configEntry{
			{"speed_ms", strconv.Itoa(cfg.PointScan.SpeedMs)},
		}},
		{"text_navigation", []configEntry{
			{"enabled", strconv.FormatBool(cfg.TextNavigation.Enabled)},
		}},
		{"focus_ring", []configEntry{
			{"primary_color", r.swatch(cfg.FocusRing.PrimaryColor)},
			{"preview_color", r.swatch(cfg.FocusRing.PreviewColor)},
		}},
		{"keys", []configEntry{
			{"select", strings.Join(cfg.Keys.Select, ", ")},
			{"next", strings.Join(cfg.Keys.Next, ", ")},
			{"previous", strings.Join(cfg.Keys.Previous, ", ")},
		}},
		{"logging", []configEntry{
			{"level", cfg.Logging.Level},
			{"format", cfg.Logging.Format},
			{"file", orNone(cfg.Logging.File)},
		}},
		{"metrics", []configEntry{
			{"listen", orNone(cfg.Metrics.Listen)},
		}},
		{"journal", []configEntry{
			{"path", orNone(cfg.Journal.Path)},
		}},
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s Config %s\n", iconStyle.Render(IconConfig), keyStyle.Render(path))
	for _, s := range sections {
		fmt.Fprintf(&sb, "\n  %s\n", r.theme.Highlight.Render("["+s.name+"]"))
		for _, e := range s.entries {
			fmt.Fprintf(&sb, "    %s = %s\n", keyStyle.Render(e.key), valueStyle.Render(e.value))
		}
	}
	return sb.String()
}

func (r *ConfigRenderer) swatch(color string) string {
	block := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
	return block + " " + color
}

func orNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}

// RenderSchemaWritten renders the confirmation after writing the JSON schema.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("%s Schema written to %s", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
