// SPDX-License-Identifier: MIT
// Package: dctopo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` with the Method* prefix.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrParamType indicates that a generator parameter is not an integer.
// Classification: TypeKind. The typed Go API cannot produce it; it surfaces
// where parameters arrive untyped (registry, CLI, HTTP, config files).
// Usage: if errors.Is(err, ErrParamType) { /* report a malformed parameter */ }.
var ErrParamType = errors.New("builder: parameter must be an integer")

// ErrParamRange indicates that an integer parameter violates a domain
// constraint: BCube n < 1 or k < 0; Fat-Tree k not positive-even, r < 1 or
// r not dividing k/2; or a size that overflows int / exceeds WithMaxNodes.
// Classification: RangeKind.
// Usage: if errors.Is(err, ErrParamRange) { /* reject parameters */ }.
var ErrParamRange = errors.New("builder: parameter out of range")

// ErrConstructFailed indicates that a constructor hit an internal
// consistency failure while populating the graph (for example a link to a
// node that was never added). It wraps the underlying core error, so
// errors.Is(err, core.ErrUnknownNode) also holds. A graph involved in such a
// failure must be discarded.
var ErrConstructFailed = errors.New("builder: construction failed")

// paramErrorf builds "<Method>: <message>: <sentinel>" keeping the sentinel
// reachable through errors.Is.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func paramErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// constructErrorf wraps a core failure so that both ErrConstructFailed and
// the core sentinel are visible to errors.Is.
func constructErrorf(method, op string, err error) error {
	return fmt.Errorf("%s: %s: %w: %w", method, op, ErrConstructFailed, err)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return paramErrorf(MethodFatTree, ErrParamRange, "k=%d must be even", k)
//    yields "FatTree: k=3 must be even: builder: parameter out of range".
//
// 2) Priority when several checks fail: type before range; within range,
//    the order documented on each constructor (k before n/r, then
//    divisibility, then size limits).
//
// 3) Validation always completes before the first graph mutation.
