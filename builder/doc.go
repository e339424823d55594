// Package builder generates data-center fabric topologies into a core.Graph.
//
// It follows a "functional-options" constructor style: every topology is a
// Constructor closure, and BuildGraph creates a graph, resolves options and
// applies constructors in order.
//
// The package offers the following key components:
//
//   - Constructors:
//     – BCube(k, n):   recursive server-centric cube; n^(k+1) hosts, each with
//     k+1 ports, over k+1 levels of n^k n-port switches.
//     – FatTree(k, r): k pods of k/2 aggregation and k/2 edge switches,
//     (k/2)²/r core switches and k³/4 hosts; r is the
//     core oversubscription ratio.
//   - Orchestration:
//     – BuildGraph:    creates the graph, applies constructors, wraps errors.
//     – BuildBCube, BuildFatTree: one-shot wrappers with preallocated capacity.
//   - Sizing:
//     – BCubeSize, FatTreeSize: closed-form counts, validated like the
//     constructors and overflow-checked.
//   - Options:
//     – WithLogger:    zap logger for per-stage debug events.
//     – WithScope:     "<scope>." prefix on every generated label.
//     – WithMaxNodes:  node-count ceiling reported as ErrParamRange.
//
// Guarantees:
//
//   - Parameters are validated before the first mutation; a failed BuildGraph
//     returns a nil graph.
//   - Same parameters and options ⇒ byte-identical node and link sequences.
//   - Wiring is purely positional: BCube links address the node sequence by
//     index, FatTree links address the switch sequence by offset.
//   - Algorithms never panic; option constructors panic on meaningless input.
//
// Errors are sentinel values (ErrParamType, ErrParamRange, ErrConstructFailed)
// wrapped with the constructor name; branch with errors.Is.
package builder
