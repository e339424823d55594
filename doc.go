// Package dctopo generates data-center network topologies: BCube and
// Fat-Tree fabrics built as plain host/switch/link graphs.
//
// The module is organised in small subpackages:
//
//	core/     - insertion-ordered Graph of hosts, switches and links
//	builder/  - BCube(k, n) and FatTree(k, r) constructors, sizing, options
//	registry/ - name → generator table, parameter parsing ("bcube,1,4")
//	bfs/      - breadth-first traversal with hooks, used for hop distances
//	stats/    - degree distributions, connectivity, host diameter
//	export/   - YAML/JSON topology documents (and back to a Graph)
//	config/   - validated YAML run configuration
//	logging/  - zap logger construction
//	server/   - HTTP API serving generated topologies
//
// The dctopo command (cmd/dctopo) wires them together:
//
//	dctopo build --topo fattree,k=4 -o fabric.yaml
//
// BCube(1,2) as an example: four hosts, each with one port per level.
//
//	s0_0: h0_0 h0_1      s1_0: h0_0 h1_0
//	s0_1: h1_0 h1_1      s1_1: h0_1 h1_1
//
//	go get github.com/katalvlaran/dctopo
package dctopo
