package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/dctopo/builder"
)

// toInt accepts any Go integer kind, an integral float (as decoded from JSON
// or YAML), or a json.Number holding an integer.
func toInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		if x > math.MaxInt || x < math.MinInt {
			return 0, fmt.Errorf("%d: %w", x, builder.ErrParamRange)
		}
		return int(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return fromUint(uint64(x))
	case uint64:
		return fromUint(x)
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return 0, fmt.Errorf("%q: %w", x.String(), builder.ErrParamType)
		}
		return toInt(i)
	default:
		return 0, fmt.Errorf("%v (%T): %w", v, v, builder.ErrParamType)
	}
}

func fromUint(u uint64) (int, error) {
	if u > math.MaxInt {
		return 0, fmt.Errorf("%d: %w", u, builder.ErrParamRange)
	}

	return int(u), nil
}

func fromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v: %w", f, builder.ErrParamType)
	}
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, fmt.Errorf("%v: %w", f, builder.ErrParamRange)
	}

	return int(f), nil
}

// ParseInt converts one textual parameter value.
// Non-integer text is builder.ErrParamType; an integer too large for int is
// builder.ErrParamRange.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q: %w", s, builder.ErrParamRange)
		}
		return 0, fmt.Errorf("%q: %w", s, builder.ErrParamType)
	}

	return v, nil
}

// FromStrings converts textual values (HTTP query, flags) into Build params.
func FromStrings(values map[string]string) (map[string]any, error) {
	out := make(map[string]any, len(values))
	for k, s := range values {
		v, err := ParseInt(s)
		if err != nil {
			return nil, fmt.Errorf("registry: %s: %w", k, err)
		}
		out[k] = v
	}

	return out, nil
}

// ParseArgs parses a Mininet-style topology spec into a name and params:
//
//	"bcube"             → bcube, {}
//	"bcube,2,3"         → bcube, {k:2, n:3}
//	"fattree,k=4,r=2"   → fattree, {k:4, r:2}
//	"fattree,8,r=2"     → fattree, {k:8, r:2}
//	"fattree,r=2,8"     → fattree, {k:8, r:2}
//
// Positional values bind to the factory's Params in order, counting only
// positional fields.
func (r *Registry) ParseArgs(spec string) (string, map[string]any, error) {
	fields := strings.Split(spec, ",")
	name := strings.TrimSpace(fields[0])
	f, err := r.Lookup(name)
	if err != nil {
		return "", nil, err
	}

	params := make(map[string]any, len(fields)-1)
	pos := 0
	for _, field := range fields[1:] {
		key, text, named := strings.Cut(field, "=")
		if named {
			key = strings.TrimSpace(key)
			if !slices.ContainsFunc(f.Params, func(p ParamSpec) bool { return p.Name == key }) {
				return "", nil, fmt.Errorf("registry: %s: %q: %w", name, key, ErrUnknownParam)
			}
		} else {
			if pos >= len(f.Params) {
				return "", nil, fmt.Errorf("registry: %s: argument %d of %d: %w", name, pos+1, len(f.Params), ErrUnknownParam)
			}
			key, text = f.Params[pos].Name, field
			pos++
		}
		if _, dup := params[key]; dup {
			return "", nil, fmt.Errorf("registry: %s: %q: %w", name, key, ErrDuplicateParam)
		}
		v, err := ParseInt(text)
		if err != nil {
			return "", nil, fmt.Errorf("registry: %s: %s: %w", name, key, err)
		}
		params[key] = v
	}

	return name, params, nil
}

// ParseArgs parses a spec against the Default registry.
func ParseArgs(spec string) (string, map[string]any, error) {
	return Default.ParseArgs(spec)
}
