package registry

import "errors"

// Sentinel errors for registry lookups and parameter resolution. Parameter
// type and range failures reuse builder.ErrParamType and builder.ErrParamRange.
var (
	// ErrUnknownTopology indicates a name with no registered factory.
	ErrUnknownTopology = errors.New("registry: unknown topology")

	// ErrUnknownParam indicates a parameter name the factory does not declare,
	// or more positional arguments than declared parameters.
	ErrUnknownParam = errors.New("registry: unknown parameter")

	// ErrDuplicateParam indicates one parameter given twice in a spec string.
	ErrDuplicateParam = errors.New("registry: duplicate parameter")

	// ErrDuplicateTopology indicates Register was called twice for one name.
	ErrDuplicateTopology = errors.New("registry: topology already registered")

	// ErrIncompleteFactory indicates a Factory without a name, New or Size.
	ErrIncompleteFactory = errors.New("registry: incomplete factory")
)
