// File: methods_links.go
// Role: Link lifecycle & queries: AddLink/HasLink/Links/LinkCount, plus nextLinkID().
// Determinism:
//   - Links() returns links in creation order; IDs are "l1", "l2", ... in that order.
// Concurrency:
//   - AddLink under g.mu write lock; queries under the read lock.

package core

import (
	"fmt"
	"strconv"
)

// linkIDPrefix is the textual prefix of link identifiers ("l1", "l2", ...).
const linkIDPrefix = "l"

// AddLink creates an undirected link between two existing nodes and returns
// its ID.
//
// Steps:
//  1. Reject empty IDs and a == b.
//  2. Lock; require both endpoints to be present (ErrUnknownNode otherwise).
//  3. Append the link and record its position in both adjacency buckets.
//
// Parallel links between the same pair are accepted; the generators never
// emit them.
//
// Errors:
//   - ErrEmptyNodeID, ErrSelfLink, ErrUnknownNode.
//
// Complexity: O(1) amortized.
func (g *Graph) AddLink(a, b string) (string, error) {
	if a == "" || b == "" {
		return "", ErrEmptyNodeID
	}
	if a == b {
		return "", fmt.Errorf("core: link %s -- %s: %w", a, b, ErrSelfLink)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[a]; !ok {
		return "", fmt.Errorf("core: link %s -- %s: endpoint %q: %w", a, b, a, ErrUnknownNode)
	}
	if _, ok := g.index[b]; !ok {
		return "", fmt.Errorf("core: link %s -- %s: endpoint %q: %w", a, b, b, ErrUnknownNode)
	}

	pos := len(g.links)
	l := &Link{ID: nextLinkID(pos), A: a, B: b}
	g.links = append(g.links, l)
	g.adj[a] = append(g.adj[a], pos)
	g.adj[b] = append(g.adj[b], pos)

	return l.ID, nil
}

// HasLink reports whether at least one link joins a and b (in either order).
// Complexity: O(min(deg(a), deg(b))).
func (g *Graph) HasLink(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	from, to := a, b
	if len(g.adj[b]) < len(g.adj[a]) {
		from, to = b, a
	}
	for _, pos := range g.adj[from] {
		if g.links[pos].Other(from) == to {
			return true
		}
	}

	return false
}

// Links returns copies of all links in creation order.
// Complexity: O(E).
func (g *Graph) Links() []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Link, len(g.links))
	for i, l := range g.links {
		out[i] = *l
	}

	return out
}

// LinkCount returns the number of links. Complexity: O(1).
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.links)
}

// nextLinkID renders the ID of the link stored at position pos.
func nextLinkID(pos int) string {
	return linkIDPrefix + strconv.Itoa(pos+1)
}
