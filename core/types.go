// Package core defines the Topology Graph: an append-only, insertion-ordered
// collection of Host and Switch nodes joined by undirected links.
//
// All core APIs take a single sync.RWMutex internally, so concurrent readers
// of a finished graph never race. Generators own the graph they populate and
// are the only writers while it is being built.
//
// This file declares Kind, Node, Link, Graph, GraphOption, NodeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrUnknownNode   - requested node does not exist.
//	ErrDuplicateNode - a node with the same ID was already added.
//	ErrSelfLink      - both link endpoints are the same node.
//	ErrInvalidKind   - node kind is neither host nor switch.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node or link endpoint ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrUnknownNode indicates an operation referenced a node that was never added.
	// Generators treat it as an internal consistency failure.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrDuplicateNode indicates a second node with an existing ID was added.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrSelfLink indicates a link whose two endpoints are the same node.
	ErrSelfLink = errors.New("core: self-link not allowed")

	// ErrInvalidKind indicates a Node whose Kind is neither KindHost nor KindSwitch.
	ErrInvalidKind = errors.New("core: invalid node kind")
)

// Kind classifies a node as a host or a switch.
type Kind uint8

const (
	// KindHost marks an end host.
	KindHost Kind = iota + 1
	// KindSwitch marks a switch; its port count is its degree.
	KindSwitch
)

// String returns "host", "switch" or "unknown".
func (k Kind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "host":
		return KindHost, nil
	case "switch":
		return KindSwitch, nil
	default:
		return 0, fmt.Errorf("core: kind %q: %w", s, ErrInvalidKind)
	}
}

// NoGroup is the Group value of nodes that belong to no level or pod.
const NoGroup = -1

// Node is a single host or switch.
//
// ID uniquely identifies the node within its Graph. Role and Group are
// descriptive labels set by generators (for example role "aggregation",
// group = pod index); wiring never depends on them.
type Node struct {
	ID    string
	Kind  Kind
	Role  string
	Group int
}

// IsHost reports whether n is a host.
func (n Node) IsHost() bool { return n.Kind == KindHost }

// IsSwitch reports whether n is a switch.
func (n Node) IsSwitch() bool { return n.Kind == KindSwitch }

// Link is an undirected connection between nodes A and B.
// ID is assigned by the graph ("l1", "l2", ...) in creation order.
type Link struct {
	ID string
	A  string
	B  string
}

// Other returns the endpoint of l opposite to id, or "" if id is not an endpoint.
func (l Link) Other(id string) string {
	switch id {
	case l.A:
		return l.B
	case l.B:
		return l.A
	default:
		return ""
	}
}

// String renders the link as "A -- B".
func (l Link) String() string {
	return l.A + " -- " + l.B
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for the given number of nodes and links.
// Generators know their exact sizes up front and pass them here.
func WithCapacity(nodes, links int) GraphOption {
	return func(g *Graph) {
		if nodes > 0 {
			g.nodes = make([]*Node, 0, nodes)
			g.index = make(map[string]int, nodes)
			g.adj = make(map[string][]int, nodes)
		}
		if links > 0 {
			g.links = make([]*Link, 0, links)
		}
	}
}

// NodeOption sets descriptive fields of a node while it is added.
type NodeOption func(n *Node)

// WithRole sets Node.Role.
func WithRole(role string) NodeOption {
	return func(n *Node) { n.Role = role }
}

// WithGroup sets Node.Group.
func WithGroup(group int) NodeOption {
	return func(n *Node) { n.Group = group }
}

// Graph is the append-only Topology Graph.
//
// nodes holds every node in insertion order; positional lookups (NodeAt)
// index into it and are stable because nodes are never removed or reordered.
// index maps ID → position. adj maps ID → positions in links, in link order.
type Graph struct {
	mu sync.RWMutex // guards everything below

	nodes []*Node
	index map[string]int

	links []*Link
	adj   map[string][]int

	hostCount   int
	switchCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any preallocation requested via WithCapacity.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]int),
		adj:   make(map[string][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
