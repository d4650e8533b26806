package classify

import (
	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/domain/entity"
)

// Restrictions are the three predicates driving a one-level group
// decomposition walk below a scope.
type Restrictions struct {
	// Leaf stops descent below a node.
	Leaf func(port.Node) bool
	// Root marks the scope itself, which is never treated as a leaf.
	Root func(port.Node) bool
	// Visit selects nodes that become direct children of the group.
	Visit func(port.Node) bool
}

// RestrictionsFor builds the predicates for scope, sharing cache.
func RestrictionsFor(scope port.Node, cache *Cache) Restrictions {
	cache = orNew(cache)
	return Restrictions{
		Leaf: func(n port.Node) bool {
			return !IsInterestingSubtree(n, cache) ||
				(!SameNode(n, scope) && IsInteresting(n, scope, cache))
		},
		Root: func(n port.Node) bool {
			return SameNode(n, scope)
		},
		Visit: func(n port.Node) bool {
			return n.Role() != entity.RoleDesktop && IsInteresting(n, scope, cache)
		},
	}
}

// InterestingChildren walks below scope in document order, stopping at the
// first interesting node on each branch, and returns those nodes. They are
// exactly the direct children of the group rooted at scope.
func InterestingChildren(scope port.Node, cache *Cache) []port.Node {
	if scope == nil {
		return nil
	}
	r := RestrictionsFor(scope, cache)
	var out []port.Node
	var walk func(n port.Node)
	walk = func(n port.Node) {
		for _, child := range n.Children() {
			if r.Root(child) {
				continue
			}
			if r.Visit(child) {
				out = append(out, child)
			}
			if !r.Leaf(child) {
				walk(child)
			}
		}
	}
	if r.Root(scope) {
		walk(scope)
	}
	return out
}
