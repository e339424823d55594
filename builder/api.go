// SPDX-License-Identifier: MIT
// Package: dctopo/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same parameters, options and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// Hints:
//   - Compose several constructors under distinct WithScope values only through
//     separate BuildGraph calls; one call shares one scope.
//   - BuildBCube / BuildFatTree preallocate the graph from the closed-form sizes.

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/dctopo/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before the first mutation and return sentinel errors (no panics).
//   - Address earlier nodes positionally relative to g.NodeCount() at entry.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately together with a nil graph.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     ErrParamRange, ErrConstructFailed (and core sentinels beneath it).
//   - A nil constructor yields ErrConstructFailed.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			cfg.logger.Debug("construction aborted", zap.Int("constructor", i), zap.Error(err))
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	cfg.logger.Info("topology built",
		zap.String("scope", cfg.scope),
		zap.Int("hosts", g.HostCount()),
		zap.Int("switches", g.SwitchCount()),
		zap.Int("links", g.LinkCount()),
	)

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add nodes with labels passed through cfg.label (scope prefix).
//   - Emit nodes and links in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.

// BCube builds BCube(k, n): n^(k+1) hosts and (k+1)·n^k switches.
// Complexity: O((k+1)·n^(k+1)) links; O(1) extra space.
//func BCube(k, n int) Constructor

// FatTree builds a k-port Fat-Tree with r:1 core oversubscription.
// Complexity: O(k³) nodes and links; O(k²) extra space.
//func FatTree(k, r int) Constructor

// MaxCapacityHint bounds the preallocation requested by SizedGraph; larger
// graphs grow on demand.
const MaxCapacityHint = 1 << 20

// CheckLimit resolves opts and reports ErrParamRange when size exceeds the
// WithMaxNodes ceiling. Callers run it before allocating anything for size.
//
// Complexity: O(len(opts)) time, O(1) space.
func CheckLimit(size Size, opts ...BuilderOption) error {
	cfg := newBuilderConfig(opts...)

	return validateLimit(MethodBuildGraph, size.Nodes(), cfg.maxNodes)
}

// SizedGraph returns the graph options preallocating room for size, with
// each count clamped to MaxCapacityHint.
func SizedGraph(size Size) []core.GraphOption {
	return []core.GraphOption{core.WithCapacity(min(size.Nodes(), MaxCapacityHint), min(size.Links, MaxCapacityHint))}
}

// BuildBCube is a convenience wrapper: BuildGraph with capacity sized from
// BCubeSize(k, n) and the single BCube(k, n) constructor. The node ceiling
// is checked before any allocation.
func BuildBCube(k, n int, opts ...BuilderOption) (*core.Graph, error) {
	size, err := BCubeSize(k, n)
	if err == nil {
		err = CheckLimit(size, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}

	return BuildGraph(SizedGraph(size), opts, BCube(k, n))
}

// BuildFatTree is a convenience wrapper: BuildGraph with capacity sized from
// FatTreeSize(k, r) and the single FatTree(k, r) constructor. The node
// ceiling is checked before any allocation.
func BuildFatTree(k, r int, opts ...BuilderOption) (*core.Graph, error) {
	size, err := FatTreeSize(k, r)
	if err == nil {
		err = CheckLimit(size, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}

	return BuildGraph(SizedGraph(size), opts, FatTree(k, r))
}
