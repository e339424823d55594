// Package core provides the Topology Graph used by every fabric generator:
// a thread-safe, append-only, insertion-ordered graph of hosts and switches.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Two node kinds, KindHost and KindSwitch.
//   - Undirected links; parallel links allowed, self-links rejected.
//   - No removal and no mutation after creation: a graph is written once by
//     the generator that owns it, then read by consumers.
//   - A single sync.RWMutex guards the catalogs.
//
// Why insertion order?
//
//	Generators address nodes arithmetically. BCube links a switch to "the
//	nodes at positions m, m+n^l, ..." of the node sequence; Fat-Tree links a
//	core switch to "the switch at offset nCore + c/g + k*p" of its switch
//	sequence. Nodes() and NodeAt(i) expose that sequence explicitly and
//	guarantee a position never changes once assigned.
//
// Core Methods:
//
//	// Node lifecycle
//	AddHost(id string, opts ...NodeOption) (string, error)   // O(1); "" → automatic "h<n>"
//	AddSwitch(id string, opts ...NodeOption) (string, error) // O(1); "" → automatic "s<n>"
//	AddNode(n Node) (string, error)                          // O(1)
//	HasNode(id string) bool                                  // O(1)
//	Node(id string) (Node, error)                            // O(1)
//
//	// Link lifecycle
//	AddLink(a, b string) (string, error)  // O(1); unknown endpoint → ErrUnknownNode
//	HasLink(a, b string) bool             // O(min degree)
//
//	// Query
//	Nodes() []string                      // O(V), insertion order
//	NodeAt(i int) (string, error)         // O(1)
//	Hosts() / Switches() []string         // O(V), insertion order
//	NodesByRole(role string) []string     // O(V)
//	Links() []Link                        // O(E), creation order
//	IncidentLinks(id) / NeighborIDs(id)   // O(d), creation order
//	Degree(id) / Ports(id) (int, error)   // O(1)
//	AdjacencyList() map[string][]string   // O(V+E)
//	Stats() *GraphStats                   // O(V)
//
// Errors:
//
//	ErrEmptyNodeID   – zero-length node ID
//	ErrUnknownNode   – node never added (link endpoint, lookup, position)
//	ErrDuplicateNode – node ID already present
//	ErrSelfLink      – link with identical endpoints
//	ErrInvalidKind   – node kind outside {host, switch}
package core
