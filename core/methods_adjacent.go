// File: methods_adjacent.go
// Role: Neighborhood APIs (IncidentLinks, NeighborIDs, Degree, Ports, AdjacencyList).
// Determinism:
//   - Every result follows link creation order.
// Concurrency:
//   - Read operations hold g.mu read lock.

package core

import "fmt"

// IncidentLinks returns copies of the links touching id, in creation order.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrUnknownNode: if the node does not exist.
//
// Complexity: O(d), where d is the degree of id.
func (g *Graph) IncidentLinks(id string) ([]Link, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[id]; !ok {
		return nil, fmt.Errorf("core: incident links of %q: %w", id, ErrUnknownNode)
	}
	bucket := g.adj[id]
	out := make([]Link, len(bucket))
	for i, pos := range bucket {
		out[i] = *g.links[pos]
	}

	return out, nil
}

// NeighborIDs returns the opposite endpoint of every link touching id, in
// link creation order. A neighbor joined by parallel links appears once per link.
//
// Errors:
//   - ErrEmptyNodeID, ErrUnknownNode.
//
// Complexity: O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[id]; !ok {
		return nil, fmt.Errorf("core: neighbors of %q: %w", id, ErrUnknownNode)
	}
	bucket := g.adj[id]
	out := make([]string, len(bucket))
	for i, pos := range bucket {
		out[i] = g.links[pos].Other(id)
	}

	return out, nil
}

// Degree returns the number of links touching id.
//
// Errors:
//   - ErrEmptyNodeID, ErrUnknownNode.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[id]; !ok {
		return 0, fmt.Errorf("core: degree of %q: %w", id, ErrUnknownNode)
	}

	return len(g.adj[id]), nil
}

// Ports returns the port count a switch needs to carry its links, which is
// its degree. For a host it is the number of network interfaces.
func (g *Graph) Ports(id string) (int, error) {
	return g.Degree(id)
}

// AdjacencyList returns, for every node, its neighbor IDs in link creation
// order. Nodes without links map to an empty, non-nil slice.
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.nodes))
	for _, n := range g.nodes {
		bucket := g.adj[n.ID]
		nbrs := make([]string, len(bucket))
		for i, pos := range bucket {
			nbrs[i] = g.links[pos].Other(n.ID)
		}
		out[n.ID] = nbrs
	}

	return out
}
