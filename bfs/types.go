package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound is returned when the start ID is not in the graph.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrNoPath is returned by PathTo for a node the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option tunes one BFS run.
type Option func(*options)

type options struct {
	ctx       context.Context
	onEnqueue func(id string, depth int)
	keep      func(curr, neighbor string) bool
}

// WithContext makes the search stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnEnqueue calls fn once per node, when it is first discovered, with
// its hop distance from the start.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *options) { o.onEnqueue = fn }
}

// WithFilterNeighbor forbids the hop curr→neighbor when fn returns false.
// Filtering a hop only hides neighbor if no other hop reaches it.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *options) { o.keep = fn }
}

// Result is the BFS tree of one run.
type Result struct {
	// Order lists reached nodes in dequeue order, start first.
	Order []string
	// Depth is the hop distance of every reached node.
	Depth map[string]int
	// Parent is the predecessor of every reached node except the start.
	Parent map[string]string
}

// Eccentricity returns the hop distance to the farthest reached node.
func (r *Result) Eccentricity() int {
	ecc := 0
	for _, d := range r.Depth {
		ecc = max(ecc, d)
	}

	return ecc
}

// PathTo returns the nodes from the start to dest, both included, following
// Parent links.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: PathTo(%q): %w", dest, ErrNoPath)
	}
	path := make([]string, d+1)
	for cur := dest; d >= 0; d-- {
		path[d] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
