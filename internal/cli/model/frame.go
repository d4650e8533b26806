package model

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/switchscan/internal/app"
	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/classify"
	"github.com/bnema/switchscan/internal/cli/styles"
	"github.com/bnema/switchscan/internal/infrastructure/memtree"
	"github.com/bnema/switchscan/internal/navigation"
)

// maxFrameEvents caps the host events shown next to the tree.
const maxFrameEvents = 8

// BuildFrame captures what the simulator shows. It reads controller state and
// must run on the main loop.
func BuildFrame(ctx context.Context, host *memtree.Host, a *app.App) styles.SimulatorFrame {
	surface := host.Snapshot()
	frame := styles.SimulatorFrame{
		Mode:      a.Mode.Mode().String(),
		AutoScan:  a.AutoScan.IsRunning(),
		Interval:  a.AutoScan.Interval(),
		MenuFocus: -1,
		PointScan: surface.PointScanning,
		Keyboard:  surface.KeyboardVisible,
	}
	if surface.PointScanning {
		frame.Cursor = fmt.Sprintf("%d,%d", surface.Cursor.X, surface.Cursor.Y)
	}

	var current, group port.Node
	if node := a.Navigator.CurrentNode(); node != nil {
		frame.Focused = node.String()
		current = node.AutomationNode()
		if item, ok := node.(*navigation.MenuItemNode); ok {
			frame.MenuFocus = slices.Index(surface.MenuActions, item.Action())
		}
	}
	if g := a.Navigator.CurrentGroup(); g != nil {
		frame.Group = g.String()
		group = g.AutomationNode()
	}

	if surface.MenuVisible {
		for _, action := range surface.MenuActions {
			frame.Menu = append(frame.Menu, string(action))
		}
	}

	hostFocus := host.Focused(ctx)
	var walk func(n port.Node, depth int)
	walk = func(n port.Node, depth int) {
		frame.Nodes = append(frame.Nodes, styles.FrameNode{
			Depth:     depth,
			Label:     nodeLabel(n),
			Primary:   classify.SameNode(n, current),
			Preview:   classify.SameNode(n, group),
			HostFocus: classify.SameNode(n, hostFocus),
		})
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	if desktop := host.Desktop(); desktop != nil {
		walk(desktop, 0)
	}

	log := host.Log()
	if len(log) > maxFrameEvents {
		log = log[len(log)-maxFrameEvents:]
	}
	frame.Events = slices.Clone(log)
	return frame
}

func nodeLabel(n port.Node) string {
	if name := n.Name(); name != "" {
		return fmt.Sprintf("%s %q", n.Role(), name)
	}
	return fmt.Sprintf("%s#%s", n.Role(), n.ID())
}
