// Package registry maps topology names to generator factories and resolves
// loosely typed, named parameters into builder constructors.
//
// The default registry knows "bcube" (k=1, n=4) and "fattree" (k=2, r=1).
// Parameters arrive untyped from the CLI, HTTP queries and config files, so
// the registry is where TypeKind failures (builder.ErrParamType) originate;
// RangeKind failures come from the generators themselves.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/dctopo/builder"
	"github.com/katalvlaran/dctopo/core"
)

// ParamSpec declares one integer parameter of a factory.
type ParamSpec struct {
	Name        string `json:"name" yaml:"name"`
	Default     int    `json:"default" yaml:"default"`
	Description string `json:"description" yaml:"description"`
}

// Factory describes one topology generator.
//
// New and Size receive the resolved arguments in Params order.
type Factory struct {
	Name        string
	Description string
	Params      []ParamSpec

	New  func(args []int) builder.Constructor
	Size func(args []int) (builder.Size, error)
}

// Defaults returns the declared defaults keyed by parameter name.
func (f Factory) Defaults() map[string]int {
	out := make(map[string]int, len(f.Params))
	for _, p := range f.Params {
		out[p.Name] = p.Default
	}

	return out
}

// Registry is a concurrency-safe name → Factory table.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefault returns a Registry holding the BCube and Fat-Tree factories.
func NewDefault() *Registry {
	r := New()
	for _, f := range []Factory{bcubeFactory(), fatTreeFactory()} {
		if err := r.Register(f); err != nil {
			panic(err) // static table
		}
	}

	return r
}

// Default is the process-wide registry used by the package-level helpers.
var Default = NewDefault()

// Register adds f under f.Name.
func (r *Registry) Register(f Factory) error {
	if f.Name == "" || f.New == nil || f.Size == nil {
		return fmt.Errorf("registry: Register(%q): %w", f.Name, ErrIncompleteFactory)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[f.Name]; ok {
		return fmt.Errorf("registry: Register(%q): %w", f.Name, ErrDuplicateTopology)
	}
	r.factories[f.Name] = f

	return nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := maps.Keys(r.factories)
	r.mu.RUnlock()
	slices.Sort(names)

	return names
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return Factory{}, fmt.Errorf("registry: %q: %w", name, ErrUnknownTopology)
	}

	return f, nil
}

// Resolve merges params over the factory defaults and returns the arguments
// in declaration order.
//
// Errors:
//   - ErrUnknownTopology for an unregistered name.
//   - ErrUnknownParam for a name the factory does not declare.
//   - builder.ErrParamType for a value that is not an integer.
func (r *Registry) Resolve(name string, params map[string]any) (Factory, []int, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return Factory{}, nil, err
	}

	// Deterministic error reporting regardless of map order.
	keys := maps.Keys(params)
	slices.Sort(keys)
	for _, key := range keys {
		if !slices.ContainsFunc(f.Params, func(p ParamSpec) bool { return p.Name == key }) {
			return Factory{}, nil, fmt.Errorf("registry: %s: %q: %w", name, key, ErrUnknownParam)
		}
	}

	args := make([]int, len(f.Params))
	for i, p := range f.Params {
		raw, ok := params[p.Name]
		if !ok {
			args[i] = p.Default
			continue
		}
		v, err := toInt(raw)
		if err != nil {
			return Factory{}, nil, fmt.Errorf("registry: %s: %s: %w", name, p.Name, err)
		}
		args[i] = v
	}

	return f, args, nil
}

// Build resolves params and runs the named generator on a fresh graph
// preallocated from the factory's size formula. A WithMaxNodes ceiling in
// opts is checked against that formula before anything is allocated.
func (r *Registry) Build(name string, params map[string]any, opts ...builder.BuilderOption) (*core.Graph, error) {
	f, args, err := r.Resolve(name, params)
	if err != nil {
		return nil, err
	}
	size, err := f.Size(args)
	if err == nil {
		err = builder.CheckLimit(size, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", name, err)
	}

	g, err := builder.BuildGraph(builder.SizedGraph(size), opts, f.New(args))
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", name, err)
	}

	return g, nil
}

// Names lists the topologies of the Default registry.
func Names() []string { return Default.Names() }

// Lookup finds a factory in the Default registry.
func Lookup(name string) (Factory, error) { return Default.Lookup(name) }

// Build runs a generator from the Default registry.
func Build(name string, params map[string]any, opts ...builder.BuilderOption) (*core.Graph, error) {
	return Default.Build(name, params, opts...)
}

func bcubeFactory() Factory {
	return Factory{
		Name:        "bcube",
		Description: "BCube(k, n): recursive server-centric cube of n-port switches",
		Params: []ParamSpec{
			{Name: "k", Default: builder.DefaultBCubeLevel, Description: "recursion level (≥ 0)"},
			{Name: "n", Default: builder.DefaultBCubePorts, Description: "switch port count (≥ 1)"},
		},
		New:  func(a []int) builder.Constructor { return builder.BCube(a[0], a[1]) },
		Size: func(a []int) (builder.Size, error) { return builder.BCubeSize(a[0], a[1]) },
	}
}

func fatTreeFactory() Factory {
	return Factory{
		Name:        "fattree",
		Description: "FatTree(k, r): k-port three-layer Clos with r:1 core oversubscription",
		Params: []ParamSpec{
			{Name: "k", Default: builder.DefaultFatTreePorts, Description: "switch port count (even, ≥ 2)"},
			{Name: "r", Default: builder.DefaultFatTreeOversubRatio, Description: "oversubscription ratio (≥ 1, divides k/2)"},
		},
		New:  func(a []int) builder.Constructor { return builder.FatTree(a[0], a[1]) },
		Size: func(a []int) (builder.Size, error) { return builder.FatTreeSize(a[0], a[1]) },
	}
}
