package navigation

import (
	"fmt"
	"strings"

	"github.com/bnema/switchscan/internal/classify"
	"github.com/bnema/switchscan/internal/domain/entity"
)

// TreeForDebugging renders the desktop's group decomposition. The focused
// item is marked with '>' and the current group with '*'.
func (n *ItemNavigator) TreeForDebugging() string {
	var b strings.Builder
	desktop := n.newGroup(n.tree.Desktop(), classify.NewCache())
	n.writeGroup(&b, desktop, 0, make(map[entity.NodeID]bool))
	return b.String()
}

func (n *ItemNavigator) writeGroup(b *strings.Builder, g *GroupNode, depth int, seen map[entity.NodeID]bool) {
	id := g.node.ID()
	if seen[id] {
		return
	}
	seen[id] = true

	marker := " "
	if g.IsEquivalentTo(n.group) {
		marker = "*"
	}
	fmt.Fprintf(b, "%s%s%s\n", strings.Repeat("  ", depth), marker, g)

	for _, c := range g.children {
		focus := " "
		if n.node != nil && (c == n.node || c.IsEquivalentTo(n.node)) {
			focus = ">"
		}
		loc := "no location"
		if r, ok := c.Location(); ok {
			loc = r.String()
		}
		fmt.Fprintf(b, "%s%s %s %s\n", strings.Repeat("  ", depth+1), focus, c, loc)
		if sub := c.AsGroup(); sub != nil {
			n.writeGroup(b, sub, depth+2, seen)
		}
	}
}
