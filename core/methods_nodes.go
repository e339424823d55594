// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes(), Hosts(), Switches() return IDs in insertion order.
//
// Concurrency:
//   - Mutations take g.mu write lock; queries take the read lock.
package core

import (
	"fmt"
	"strconv"
)

// Prefixes used for automatically assigned node IDs.
const (
	autoHostPrefix   = "h"
	autoSwitchPrefix = "s"
)

// AddHost appends a host node and returns its ID.
//
// An empty id requests an automatic label "h<n>" where n is the 1-based count
// of hosts in the graph including this one.
//
// Errors:
//   - ErrDuplicateNode: a node with this ID exists (explicit or automatic).
//
// Complexity: O(1) amortized.
func (g *Graph) AddHost(id string, opts ...NodeOption) (string, error) {
	return g.addNode(Node{ID: id, Kind: KindHost, Role: "host", Group: NoGroup}, opts)
}

// AddSwitch appends a switch node and returns its ID.
// An empty id requests an automatic label "s<n>"; see AddHost.
//
// Complexity: O(1) amortized.
func (g *Graph) AddSwitch(id string, opts ...NodeOption) (string, error) {
	return g.addNode(Node{ID: id, Kind: KindSwitch, Role: "switch", Group: NoGroup}, opts)
}

// AddNode appends n as-is. n.Kind must be KindHost or KindSwitch and n.ID
// must be non-empty.
//
// Errors:
//   - ErrEmptyNodeID: n.ID == "".
//   - ErrInvalidKind: n.Kind is not a known Kind.
//   - ErrDuplicateNode: a node with this ID exists.
func (g *Graph) AddNode(n Node) (string, error) {
	if n.ID == "" {
		return "", ErrEmptyNodeID
	}
	if n.Kind != KindHost && n.Kind != KindSwitch {
		return "", fmt.Errorf("core: AddNode(%s): kind %d: %w", n.ID, n.Kind, ErrInvalidKind)
	}

	return g.addNode(n, nil)
}

// addNode applies opts, resolves an automatic ID if needed and registers n.
func (g *Graph) addNode(n Node, opts []NodeOption) (string, error) {
	for _, opt := range opts {
		opt(&n)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if n.ID == "" {
		switch n.Kind {
		case KindHost:
			n.ID = autoHostPrefix + strconv.Itoa(g.hostCount+1)
		default:
			n.ID = autoSwitchPrefix + strconv.Itoa(g.switchCount+1)
		}
	}
	if _, exists := g.index[n.ID]; exists {
		return "", fmt.Errorf("core: add %s %q: %w", n.Kind, n.ID, ErrDuplicateNode)
	}

	node := n
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, &node)
	if _, ok := g.adj[n.ID]; !ok {
		g.adj[n.ID] = nil
	}
	if n.Kind == KindHost {
		g.hostCount++
	} else {
		g.switchCount++
	}

	return n.ID, nil
}

// HasNode reports whether id was added (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Node returns a copy of the node with the given ID.
//
// Errors:
//   - ErrEmptyNodeID, ErrUnknownNode.
func (g *Graph) Node(id string) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos, ok := g.index[id]
	if !ok {
		return Node{}, fmt.Errorf("core: node %q: %w", id, ErrUnknownNode)
	}

	return *g.nodes[pos], nil
}

// Nodes returns all node IDs in insertion order. The slice is a fresh copy.
//
// Insertion order is part of the contract: callers may address nodes by their
// position in this sequence, and that position never changes once assigned.
//
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.ID
	}

	return out
}

// NodeAt returns the ID of the node at position i of the insertion sequence.
// It is the O(1) equivalent of Nodes()[i].
//
// Errors:
//   - ErrUnknownNode: i is outside [0, NodeCount()).
func (g *Graph) NodeAt(i int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.nodes) {
		return "", fmt.Errorf("core: position %d of %d: %w", i, len(g.nodes), ErrUnknownNode)
	}

	return g.nodes[i].ID, nil
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Hosts returns host IDs in insertion order.
func (g *Graph) Hosts() []string {
	return g.nodesOfKind(KindHost)
}

// Switches returns switch IDs in insertion order.
func (g *Graph) Switches() []string {
	return g.nodesOfKind(KindSwitch)
}

// NodesByRole returns, in insertion order, the IDs of nodes whose Role is role.
func (g *Graph) NodesByRole(role string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []string
	for _, n := range g.nodes {
		if n.Role == role {
			out = append(out, n.ID)
		}
	}

	return out
}

func (g *Graph) nodesOfKind(k Kind) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	size := g.hostCount
	if k == KindSwitch {
		size = g.switchCount
	}
	out := make([]string, 0, size)
	for _, n := range g.nodes {
		if n.Kind == k {
			out = append(out, n.ID)
		}
	}

	return out
}

// HostCount returns the number of hosts. Complexity: O(1).
func (g *Graph) HostCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hostCount
}

// SwitchCount returns the number of switches. Complexity: O(1).
func (g *Graph) SwitchCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.switchCount
}
