package classify

import "github.com/bnema/switchscan/internal/domain/entity"

type scopedKey struct {
	node  entity.NodeID
	scope entity.NodeID
}

// Cache memoizes classifications for the duration of one top-level query,
// such as building one group's children or rebuilding focus history.
//
// A Cache must be discarded once the query finishes: the host tree mutates
// between queries and a stale entry would silently corrupt navigation.
type Cache struct {
	actionable map[entity.NodeID]bool
	subtree    map[entity.NodeID]bool
	group      map[scopedKey]bool
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		actionable: make(map[entity.NodeID]bool),
		subtree:    make(map[entity.NodeID]bool),
		group:      make(map[scopedKey]bool),
	}
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	return len(c.actionable) + len(c.subtree) + len(c.group)
}

func orNew(c *Cache) *Cache {
	if c == nil {
		return NewCache()
	}
	return c
}
