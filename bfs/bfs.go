package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dctopo/core"
)

// BFS explores g from startID in non-decreasing hop distance. Neighbors are
// taken in link creation order, so the result is reproducible.
//
// Errors: ErrGraphNil, ErrStartNodeNotFound, or the context error. On
// cancellation the partial Result is returned alongside the error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("bfs: %q: %w", startID, ErrStartNodeNotFound)
	}

	n := g.NodeCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	reach := func(id, parent string, d int) {
		res.Depth[id] = d
		if parent != "" {
			res.Parent[id] = parent
		}
		if o.onEnqueue != nil {
			o.onEnqueue(id, d)
		}
		res.Order = append(res.Order, id)
	}

	// Order doubles as the queue; head is the next node to expand.
	reach(startID, "", 0)
	for head := 0; head < len(res.Order); head++ {
		if err := o.ctx.Err(); err != nil {
			return res, err
		}
		curr := res.Order[head]
		nbrs, err := g.NeighborIDs(curr)
		if err != nil {
			return res, fmt.Errorf("bfs: neighbors of %q: %w", curr, err)
		}
		for _, nbr := range nbrs {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			if o.keep != nil && !o.keep(curr, nbr) {
				continue
			}
			reach(nbr, curr, res.Depth[curr]+1)
		}
	}

	return res, nil
}
