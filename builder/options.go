// SPDX-License-Identifier: MIT
// Package: dctopo/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"strings"

	"go.uber.org/zap"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithLogger routes constructor events to l. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithScope prefixes every generated node label with "<scope>.".
// Empty scope restores verbatim labels. Panics if scope contains the
// separator itself, which would make scoped IDs ambiguous.
// Complexity: O(len(scope)) time, O(1) space.
func WithScope(scope string) BuilderOption {
	if strings.Contains(scope, scopeSeparator) {
		panic("builder: WithScope(scope containing \".\")")
	}
	return func(c *builderConfig) {
		c.scope = scope
	}
}

// WithMaxNodes rejects, with ErrParamRange, any constructor whose node count
// (hosts + switches) would exceed limit. Zero disables the ceiling.
// Panics if limit < 0.
// Complexity: O(1) time, O(1) space.
func WithMaxNodes(limit int) BuilderOption {
	if limit < 0 {
		panic("builder: WithMaxNodes(limit<0)")
	}
	return func(c *builderConfig) {
		c.maxNodes = limit
	}
}
