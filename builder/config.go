// SPDX-License-Identifier: MIT
// Package: dctopo/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • logger   = zap.NewNop()  (silent)
//   • scope    = ""            (labels used verbatim)
//   • maxNodes = 0             (no ceiling beyond int overflow)

package builder

import (
	"go.uber.org/zap"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// logger receives per-stage debug events and a completion summary.
	logger *zap.Logger
	// scope, when non-empty, prefixes every node label as "<scope>.<label>"
	// so several fabrics can share one graph without ID clashes.
	scope string
	// maxNodes caps hosts+switches per constructor; ≤ 0 disables the cap.
	maxNodes int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// label applies the configured scope to a generator label.
func (c builderConfig) label(name string) string {
	if c.scope == "" {
		return name
	}

	return c.scope + scopeSeparator + name
}
