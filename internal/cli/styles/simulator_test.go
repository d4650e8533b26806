package styles_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/switchscan/internal/cli/styles"
	"github.com/bnema/switchscan/internal/infrastructure/config"
)

func TestSimulatorRenderer_Render(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewSimulatorRenderer(theme)

	out := r.Render(styles.SimulatorFrame{
		Mode:     "item_scan",
		AutoScan: true,
		Interval: time.Second,
		Nodes: []styles.FrameNode{
			{Depth: 0, Label: "desktop", Preview: true},
			{Depth: 1, Label: "ok button", Primary: true},
			{Depth: 1, Label: "name field", HostFocus: true},
		},
		Focused:   "ok button",
		Group:     "desktop",
		Menu:      []string{"select", "scroll_down"},
		MenuFocus: 1,
		Events:    []string{"focus:ok"},
		Status:    "menu_not_found",
	}, 0, "enter select")

	require.Contains(t, out, "item_scan")
	require.Contains(t, out, "auto 1s")
	require.Contains(t, out, "ok button")
	require.Contains(t, out, "name field *")
	require.Contains(t, out, "scroll_down")
	require.Contains(t, out, "focus:ok")
	require.Contains(t, out, "menu_not_found")
	require.Contains(t, out, "enter select")
}

func TestSimulatorRenderer_ClosedMenu(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewSimulatorRenderer(theme)

	out := r.Render(styles.SimulatorFrame{Mode: "point_scan", PointScan: true, Cursor: "40,12"}, 0, "")
	assert.Contains(t, out, "closed")
	assert.Contains(t, out, "40,12")
	assert.NotContains(t, out, "auto")
}

func TestInspectRenderer_Render(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewInspectRenderer(theme)

	out := r.Render("tree.yaml", "*desktop\n  > ok\n", []styles.NodeClass{
		{Depth: 0, Label: "desktop", Group: true, Interesting: true, Visible: true},
		{Depth: 1, Label: "ok", Actionable: true, Interesting: true, Visible: true},
		{Depth: 1, Label: "spacer"},
	})

	assert.Contains(t, out, "tree.yaml")
	assert.Contains(t, out, "> ok")
	assert.Contains(t, out, "group")
	assert.Contains(t, out, "actionable")
	assert.Contains(t, out, "hidden")
}
