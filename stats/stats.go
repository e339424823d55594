// Package stats summarises the structure of a generated fabric: element
// counts per role, degree distributions, connectivity and host-to-host hop
// distances. It is the verification companion of package builder.
package stats

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/dctopo/bfs"
	"github.com/katalvlaran/dctopo/core"
)

// ErrGraphNil is returned for a nil graph.
var ErrGraphNil = errors.New("stats: graph is nil")

// Degrees describes a degree distribution.
type Degrees struct {
	Min    int         `json:"min" yaml:"min"`
	Max    int         `json:"max" yaml:"max"`
	Mean   float64     `json:"mean" yaml:"mean"`
	StdDev float64     `json:"stddev" yaml:"stddev"`
	Counts map[int]int `json:"counts" yaml:"counts"` // degree → number of nodes
}

// Regular reports whether every node has the same degree.
func (d Degrees) Regular() bool { return len(d.Counts) == 1 }

// Summary is the structural report of one graph.
type Summary struct {
	Nodes    int            `json:"nodes" yaml:"nodes"`
	Hosts    int            `json:"hosts" yaml:"hosts"`
	Switches int            `json:"switches" yaml:"switches"`
	Links    int            `json:"links" yaml:"links"`
	Roles    map[string]int `json:"roles" yaml:"roles"`

	HostDegree   Degrees `json:"hostDegree" yaml:"hostDegree"`
	SwitchDegree Degrees `json:"switchDegree" yaml:"switchDegree"`

	Components int  `json:"components" yaml:"components"`
	Connected  bool `json:"connected" yaml:"connected"`

	// HostDiameter is the largest hop count between two reachable hosts;
	// MeanHostDistance averages over all ordered reachable host pairs.
	// Both cover only the sampled sources (see WithSources).
	HostDiameter     int     `json:"hostDiameter" yaml:"hostDiameter"`
	MeanHostDistance float64 `json:"meanHostDistance" yaml:"meanHostDistance"`
	Sources          int     `json:"sources" yaml:"sources"`
}

// Option tunes Analyze.
type Option func(*options)

type options struct {
	ctx     context.Context
	sources int
}

// WithContext bounds the distance computation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithSources limits host-distance BFS runs to the first n hosts in
// insertion order. n ≤ 0 means every host (O(H·(V+E))).
func WithSources(n int) Option {
	return func(o *options) { o.sources = n }
}

// Analyze computes the Summary of g.
func Analyze(g *core.Graph, opts ...Option) (*Summary, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	gs := g.Stats()
	s := &Summary{
		Nodes:    gs.NodeCount,
		Hosts:    gs.HostCount,
		Switches: gs.SwitchCount,
		Links:    gs.LinkCount,
		Roles:    gs.RoleCount,
	}

	var err error
	if s.HostDegree, err = degreesOf(g, g.Hosts()); err != nil {
		return nil, err
	}
	if s.SwitchDegree, err = degreesOf(g, g.Switches()); err != nil {
		return nil, err
	}
	if s.Components, err = components(o.ctx, g); err != nil {
		return nil, err
	}
	s.Connected = s.Components <= 1
	if err = hostDistances(o, g, s); err != nil {
		return nil, err
	}

	return s, nil
}

// degreesOf builds the distribution over ids.
func degreesOf(g *core.Graph, ids []string) (Degrees, error) {
	d := Degrees{Counts: make(map[int]int)}
	if len(ids) == 0 {
		return d, nil
	}
	xs := make([]float64, len(ids))
	for i, id := range ids {
		deg, err := g.Degree(id)
		if err != nil {
			return Degrees{}, fmt.Errorf("stats: degree of %q: %w", id, err)
		}
		xs[i] = float64(deg)
		d.Counts[deg]++
		if i == 0 || deg < d.Min {
			d.Min = deg
		}
		if deg > d.Max {
			d.Max = deg
		}
	}
	d.Mean, d.StdDev = stat.PopMeanStdDev(xs, nil)

	return d, nil
}

// components counts connected components by repeated BFS in node order.
func components(ctx context.Context, g *core.Graph) (int, error) {
	seen := make(map[string]bool, g.NodeCount())
	n := 0
	for _, id := range g.Nodes() {
		if seen[id] {
			continue
		}
		res, err := bfs.BFS(g, id, bfs.WithContext(ctx))
		if err != nil {
			return 0, fmt.Errorf("stats: components: %w", err)
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		n++
	}

	return n, nil
}

// hostDistances fills the host diameter and mean distance.
func hostDistances(o options, g *core.Graph, s *Summary) error {
	hosts := g.Hosts()
	sources := hosts
	if o.sources > 0 && o.sources < len(hosts) {
		sources = hosts[:o.sources]
	}
	s.Sources = len(sources)

	var dists []float64
	for _, src := range sources {
		res, err := bfs.BFS(g, src, bfs.WithContext(o.ctx))
		if err != nil {
			return fmt.Errorf("stats: distances from %q: %w", src, err)
		}
		for _, h := range hosts {
			d, ok := res.Depth[h]
			if !ok || h == src {
				continue
			}
			dists = append(dists, float64(d))
			if d > s.HostDiameter {
				s.HostDiameter = d
			}
		}
	}
	if len(dists) > 0 {
		s.MeanHostDistance = stat.Mean(dists, nil)
	}

	return nil
}

// RoleNames returns the roles present in s, sorted.
func (s *Summary) RoleNames() []string {
	names := maps.Keys(s.Roles)
	slices.Sort(names)

	return names
}
