// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapping ErrParamRange when its
// precondition is violated.
package builder

// validateMin ensures that the named integer parameter 'got' is ≥ 'min'.
// Returns "<Method>: <name>=<got> must be ≥ <min>: ..." otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return paramErrorf(method, ErrParamRange, "%s=%d must be ≥ %d", name, got, min)
	}

	return nil
}

// validateEven ensures that the named parameter is even.
//
// Complexity: O(1) time and space.
func validateEven(method, name string, got int) error {
	if got%2 != 0 {
		return paramErrorf(method, ErrParamRange, "%s=%d must be even", name, got)
	}

	return nil
}

// validateDivides ensures that divisor evenly divides value.
// divisor must already be known to be ≥ 1.
//
// Complexity: O(1) time and space.
func validateDivides(method, valueName string, value int, divisorName string, divisor int) error {
	if value%divisor != 0 {
		return paramErrorf(method, ErrParamRange, "%s=%d must be divisible by %s=%d",
			valueName, value, divisorName, divisor)
	}

	return nil
}

// validateLimit enforces an optional node-count ceiling (limit ≤ 0 disables it).
//
// Complexity: O(1) time and space.
func validateLimit(method string, nodes, limit int) error {
	if limit > 0 && nodes > limit {
		return paramErrorf(method, ErrParamRange, "%d nodes exceed the limit of %d", nodes, limit)
	}

	return nil
}
