// SPDX-License-Identifier: MIT
// Package: dctopo/builder
//
// impl_bcube.go - implementation of BCube(k, n) constructor.
//
// Canonical model:
//   • BCube_0 is n hosts on one n-port switch; BCube_k is n BCube_(k-1)
//     joined by n^k switches. The recursion is realised by one flat loop per
//     level using strides arg1 = n^level, arg2 = n^(level+1).
//
// Contract:
//   • n ≥ 1 and k ≥ 0 (else ErrParamRange), checked before any mutation.
//   • Adds n^(k+1) hosts "h{i/n}_{i%n}" first, in index order.
//   • For each level ℓ in [0,k], adds n^k switches "s{ℓ}_{i}" and links switch
//     i to the nodes at positions m, m+arg1, ..., m+(n-1)·arg1 of the node
//     sequence, where m = i%arg1 + (i/arg1)·arg2. Positions are relative to
//     the first node this constructor added, so hosts occupy [0, n^(k+1)).
//   • Every host ends with degree k+1, every switch with degree n.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n^(k+1)) hosts + O((k+1)·n^(k+1)) links.
//   • Space: O(1) extra.
//
// Determinism:
//   • Stable node order: hosts by index, then switches by (level, position).
//   • Stable link order: by switch, then by stride offset.

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/dctopo/core"
)

// BCube returns a Constructor that builds BCube(k, n).
func BCube(k, n int) Constructor {
	// The closure captures (k, n); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters and size up front (fail fast; no partial work).
		size, err := BCubeSize(k, n)
		if err != nil {
			return err
		}
		if err = validateLimit(MethodBCube, size.Nodes(), cfg.maxNodes); err != nil {
			return err
		}
		log := cfg.logger.With(zap.String("topology", MethodBCube), zap.Int("k", k), zap.Int("n", n))

		// Positions below are relative to the nodes this constructor adds.
		base := g.NodeCount()

		// 2) Hosts first; their positions are what the strides address.
		for i := 0; i < size.Hosts; i++ {
			id := cfg.label(fmt.Sprintf(bcubeHostFmt, i/n, i%n))
			if _, err = g.AddHost(id, core.WithRole(RoleHost)); err != nil {
				return constructErrorf(MethodBCube, fmt.Sprintf("AddHost(%s)", id), err)
			}
		}
		log.Debug("hosts added", zap.Int("hosts", size.Hosts))

		// 3) One switch per (level, position); each takes n hosts at stride arg1.
		arg1 := 1
		for level := 0; level <= k; level++ {
			arg2 := arg1 * n
			for i := 0; i < size.PerLevel; i++ {
				sw := cfg.label(fmt.Sprintf(bcubeSwitchFmt, level, i))
				if _, err = g.AddSwitch(sw, core.WithRole(RoleBCubeSwitch), core.WithGroup(level)); err != nil {
					return constructErrorf(MethodBCube, fmt.Sprintf("AddSwitch(%s)", sw), err)
				}

				m := i%arg1 + (i/arg1)*arg2
				for v := m; v < m+arg2; v += arg1 {
					// Positional lookup into the live node sequence; hosts never move.
					host, err := g.NodeAt(base + v)
					if err != nil {
						return constructErrorf(MethodBCube, fmt.Sprintf("NodeAt(%d)", base+v), err)
					}
					if _, err = g.AddLink(sw, host); err != nil {
						return constructErrorf(MethodBCube, fmt.Sprintf("AddLink(%s, %s)", sw, host), err)
					}
				}
			}
			log.Debug("level wired", zap.Int("level", level), zap.Int("switches", size.PerLevel),
				zap.Int("stride", arg1))
			arg1 = arg2
		}

		return nil
	}
}
