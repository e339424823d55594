// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary facade over a Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	NodeCount   int
	HostCount   int
	SwitchCount int
	LinkCount   int

	// RoleCount maps Node.Role to the number of nodes carrying it.
	RoleCount map[string]int

	// MaxDegree is the largest degree of any node (0 for an empty graph).
	MaxDegree int
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Copy counters and scan nodes once for roles and degrees.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(V), Space O(R) for R distinct roles.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount:   len(g.nodes),
		HostCount:   g.hostCount,
		SwitchCount: g.switchCount,
		LinkCount:   len(g.links),
		RoleCount:   make(map[string]int),
	}
	for _, n := range g.nodes {
		stats.RoleCount[n.Role]++
		if d := len(g.adj[n.ID]); d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return &stats
}
