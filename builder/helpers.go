// Package builder provides internal helper functions used by Constructor
// implementations.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap core errors with constructErrorf for uniform reporting.
//   - Performance: no allocations beyond what the graph itself stores.
package builder

import (
	"fmt"

	"github.com/katalvlaran/dctopo/core"
)

// linkBipartite connects every ID in left to every ID in right, emitting
// links in (i over left, j over right) order.
//
// Complexity: O(|left|·|right|) links, O(1) extra space.
func linkBipartite(g *core.Graph, method string, left, right []string) error {
	var (
		u, v string
		err  error
	)
	for _, u = range left {
		for _, v = range right {
			if _, err = g.AddLink(u, v); err != nil {
				return constructErrorf(method, fmt.Sprintf("AddLink(%s, %s)", u, v), err)
			}
		}
	}

	return nil
}

// checkedMul returns a*b for non-negative operands and whether it fit in int.
func checkedMul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || c < 0 {
		return 0, false
	}

	return c, true
}

// checkedAdd returns a+b for non-negative operands and whether it fit in int.
func checkedAdd(a, b int) (int, bool) {
	c := a + b
	if c < a {
		return 0, false
	}

	return c, true
}

// checkedPow returns base^exp for base ≥ 1, exp ≥ 0 and whether it fit in int.
// Complexity: O(exp), stopping early once the result stops growing (base 1).
func checkedPow(base, exp int) (int, bool) {
	result := 1
	if base == 1 {
		return result, true
	}
	var ok bool
	for i := 0; i < exp; i++ {
		if result, ok = checkedMul(result, base); !ok {
			return 0, false
		}
	}

	return result, true
}
