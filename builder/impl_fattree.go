// SPDX-License-Identifier: MIT
// Package: dctopo/builder
//
// impl_fattree.go - implementation of FatTree(k, r) constructor.
//
// Canonical model:
//   • k pods, each with k/2 aggregation and k/2 edge switches fully meshed.
//   • (k/2)²/r core switches; each links to one aggregation switch per pod.
//   • k/2 hosts per edge switch.
//   • Oversubscription r shrinks the core and regroups core uplinks through
//     the divisor (k/2)/r; r = 1 is the classic non-blocking Fat-Tree.
//
// Contract:
//   • k ≥ 2 and even, r ≥ 1, (k/2) % r == 0 (else ErrParamRange), checked
//     before any mutation.
//   • Global switch sequence s: core c1..c{nCore}, then per pod its
//     aggregation switches followed by its edge switches. Aggregation and edge
//     labels carry their 1-based ordinal in s ("a5", "e7", ...).
//   • Core c (0-based) links to s[nCore + c/((k/2)/r) + k·p] for every pod p.
//     The target is found by arithmetic offset into s, never by name.
//   • Hosts h1..h{k³/4} are added last, k/2 per edge switch in edge order.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(k³) nodes and links.
//   • Space: O(k²) for the switch sequence.
//
// Determinism:
//   • Stable node order: core, pods (aggregation then edge), hosts.
//   • Stable link order: pod meshes, core uplinks (core-major), host links.

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/dctopo/core"
)

// edgeSwitch remembers an edge switch and its pod for host placement.
type edgeSwitch struct {
	id  string
	pod int
}

// FatTree returns a Constructor that builds a Fat-Tree of k-port switches
// with r:1 oversubscription between the core and aggregation layers.
func FatTree(k, r int) Constructor {
	// The closure captures (k, r); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters and size up front.
		size, err := FatTreeSize(k, r)
		if err != nil {
			return err
		}
		if err = validateLimit(MethodFatTree, size.Nodes(), cfg.maxNodes); err != nil {
			return err
		}
		log := cfg.logger.With(zap.String("topology", MethodFatTree), zap.Int("k", k), zap.Int("r", r))

		half := k / 2
		nCore := size.Core
		group := half / r // exact: validation guarantees r | k/2, so group ≥ 1

		s := make([]string, 0, size.Switches)
		edges := make([]edgeSwitch, 0, size.Edge)

		// 2) Core layer.
		for i := 0; i < nCore; i++ {
			id := cfg.label(fmt.Sprintf(fatCoreFmt, i+1))
			if _, err = g.AddSwitch(id, core.WithRole(RoleCore)); err != nil {
				return constructErrorf(MethodFatTree, fmt.Sprintf("AddSwitch(%s)", id), err)
			}
			s = append(s, id)
		}
		log.Debug("core layer added", zap.Int("core", nCore))

		// 3) Pods: aggregation then edge switches, fully meshed within the pod.
		for pod := 0; pod < k; pod++ {
			aggStart := len(s)
			for j := 0; j < half; j++ {
				id := cfg.label(fmt.Sprintf(fatAggFmt, len(s)+1))
				if _, err = g.AddSwitch(id, core.WithRole(RoleAggregation), core.WithGroup(pod)); err != nil {
					return constructErrorf(MethodFatTree, fmt.Sprintf("AddSwitch(%s)", id), err)
				}
				s = append(s, id)
			}
			edgeStart := len(s)
			for j := 0; j < half; j++ {
				id := cfg.label(fmt.Sprintf(fatEdgeFmt, len(s)+1))
				if _, err = g.AddSwitch(id, core.WithRole(RoleEdge), core.WithGroup(pod)); err != nil {
					return constructErrorf(MethodFatTree, fmt.Sprintf("AddSwitch(%s)", id), err)
				}
				s = append(s, id)
				edges = append(edges, edgeSwitch{id: id, pod: pod})
			}
			if err = linkBipartite(g, MethodFatTree, s[aggStart:edgeStart], s[edgeStart:]); err != nil {
				return err
			}
		}
		log.Debug("pods wired", zap.Int("pods", k), zap.Int("switchesPerPod", k))

		// 4) Core-to-aggregation uplinks by offset into the global sequence.
		for c := 0; c < nCore; c++ {
			for p := 0; p < k; p++ {
				agg := nCore + c/group + k*p
				if _, err = g.AddLink(s[c], s[agg]); err != nil {
					return constructErrorf(MethodFatTree, fmt.Sprintf("AddLink(%s, %s)", s[c], s[agg]), err)
				}
			}
		}
		log.Debug("core uplinks wired", zap.Int("links", nCore*k), zap.Int("group", group))

		// 5) Hosts under each edge switch.
		count := 1
		for _, e := range edges {
			for i := 0; i < half; i++ {
				h := cfg.label(fmt.Sprintf(fatHostFmt, count))
				if _, err = g.AddHost(h, core.WithRole(RoleHost), core.WithGroup(e.pod)); err != nil {
					return constructErrorf(MethodFatTree, fmt.Sprintf("AddHost(%s)", h), err)
				}
				if _, err = g.AddLink(e.id, h); err != nil {
					return constructErrorf(MethodFatTree, fmt.Sprintf("AddLink(%s, %s)", e.id, h), err)
				}
				count++
			}
		}
		log.Debug("hosts attached", zap.Int("hosts", count-1))

		return nil
	}
}
