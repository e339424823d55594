// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → hops from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - WithOnEnqueue observes each node when it is first discovered.
//   - WithFilterNeighbor prunes individual hops (e.g. no relaying through hosts).
//
// Why
//
//   - Verify generated fabrics: connectivity, host-to-host hop counts,
//     eccentricity and diameter (see package stats).
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors in link creation order, and
//	BFS enqueues them in that order, so the visit sequence is reproducible
//	for a given graph.
//
// Complexity (V = nodes, E = links)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "h1", bfs.WithContext(ctx))
//	path, err := res.PathTo("h16")
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrStartNodeNotFound  if the start node does not exist.
//   - ErrNoPath             from Result.PathTo for an unreached node.
//   - Context errors, returned with the partial Result.
package bfs
