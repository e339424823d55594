package registry_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dctopo/builder"
	"github.com/katalvlaran/dctopo/registry"
)

func TestNamesAndLookup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"bcube", "fattree"}, registry.Names())

	f, err := registry.Lookup("bcube")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"k": 1, "n": 4}, f.Defaults())

	f, err = registry.Lookup("fattree")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"k": 2, "r": 1}, f.Defaults())
	assert.Equal(t, "k", f.Params[0].Name)

	_, err = registry.Lookup("torus")
	assert.ErrorIs(t, err, registry.ErrUnknownTopology)
}

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	g, err := registry.Build("bcube", nil)
	require.NoError(t, err)
	assert.Equal(t, 16, g.HostCount())
	assert.Equal(t, 8, g.SwitchCount())

	g, err = registry.Build("fattree", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "a2", "e3", "a4", "e5", "h1", "h2"}, g.Nodes())
}

func TestBuild_ParamTypes(t *testing.T) {
	t.Parallel()

	accepted := []any{
		int(4), int8(4), int16(4), int32(4), int64(4),
		uint(4), uint8(4), uint16(4), uint32(4), uint64(4),
		float32(4), float64(4), json.Number("4"),
	}
	for _, v := range accepted {
		g, err := registry.Build("fattree", map[string]any{"k": v})
		require.NoError(t, err, "%T", v)
		assert.Equal(t, 16, g.HostCount(), "%T", v)
	}

	rejected := []any{"4", 4.5, true, nil, math.NaN(), math.Inf(1), json.Number("4.5"), []int{4}}
	for _, v := range rejected {
		g, err := registry.Build("fattree", map[string]any{"k": v})
		assert.Nil(t, g)
		assert.ErrorIs(t, err, builder.ErrParamType, "%T %v", v, v)
		assert.NotErrorIs(t, err, builder.ErrParamRange, "%T %v", v, v)
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		topo    string
		params  map[string]any
		wantErr error
	}{
		{"unknown topology", "jellyfish", nil, registry.ErrUnknownTopology},
		{"unknown param", "bcube", map[string]any{"r": 1}, registry.ErrUnknownParam},
		{"type kind", "bcube", map[string]any{"n": "four"}, builder.ErrParamType},
		{"range kind bcube", "bcube", map[string]any{"n": 0}, builder.ErrParamRange},
		{"range kind fattree odd", "fattree", map[string]any{"k": 5}, builder.ErrParamRange},
		{"range kind fattree ratio", "fattree", map[string]any{"k": 4, "r": 3}, builder.ErrParamRange},
		{"uint overflow", "bcube", map[string]any{"n": uint64(math.MaxUint64)}, builder.ErrParamRange},
		{"size overflow", "bcube", map[string]any{"k": 70, "n": 2}, builder.ErrParamRange},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := registry.Build(tc.topo, tc.params)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBuild_Options(t *testing.T) {
	t.Parallel()

	_, err := registry.Build("fattree", map[string]any{"k": 8}, builder.WithMaxNodes(100))
	assert.ErrorIs(t, err, builder.ErrParamRange)

	g, err := registry.Build("bcube", map[string]any{"k": 40, "n": 2}, builder.WithMaxNodes(1000))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrParamRange)

	g, err = registry.Build("bcube", map[string]any{"k": 0, "n": 2}, builder.WithScope("x"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x.h0_0", "x.h0_1", "x.s0_0"}, g.Nodes())
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		spec     string
		wantName string
		want     map[string]any
	}{
		{"bcube", "bcube", map[string]any{}},
		{"bcube,2,3", "bcube", map[string]any{"k": 2, "n": 3}},
		{"fattree,k=4,r=2", "fattree", map[string]any{"k": 4, "r": 2}},
		{"fattree,8, r = 2", "fattree", map[string]any{"k": 8, "r": 2}},
		{" fattree ,6", "fattree", map[string]any{"k": 6}},
		{"fattree,r=2,8", "fattree", map[string]any{"k": 8, "r": 2}},
		{"bcube,n=3,2", "bcube", map[string]any{"k": 2, "n": 3}},
	}
	for _, tc := range cases {
		name, params, err := registry.ParseArgs(tc.spec)
		require.NoError(t, err, tc.spec)
		assert.Equal(t, tc.wantName, name, tc.spec)
		assert.Equal(t, tc.want, params, tc.spec)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		spec    string
		wantErr error
	}{
		{"", registry.ErrUnknownTopology},
		{"torus,4", registry.ErrUnknownTopology},
		{"bcube,1,4,2", registry.ErrUnknownParam},
		{"bcube,q=2", registry.ErrUnknownParam},
		{"bcube,two", builder.ErrParamType},
		{"fattree,k=4.0", builder.ErrParamType},
		{"fattree,k=", builder.ErrParamType},
		{"fattree,4,k=4", registry.ErrDuplicateParam},
		{"fattree,k=8,8", registry.ErrDuplicateParam},
		{"fattree,r=1,4,2", registry.ErrDuplicateParam},
		{"bcube,99999999999999999999", builder.ErrParamRange},
	}
	for _, tc := range cases {
		_, _, err := registry.ParseArgs(tc.spec)
		assert.ErrorIs(t, err, tc.wantErr, tc.spec)
	}
}

func TestParseArgs_FeedsBuild(t *testing.T) {
	t.Parallel()

	name, params, err := registry.ParseArgs("fattree,4,2")
	require.NoError(t, err)
	g, err := registry.Build(name, params)
	require.NoError(t, err)
	assert.Equal(t, 2, len(g.NodesByRole(builder.RoleCore)))
}

func TestFromStrings(t *testing.T) {
	t.Parallel()

	params, err := registry.FromStrings(map[string]string{"k": "4", "r": " 2 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": 4, "r": 2}, params)

	_, err = registry.FromStrings(map[string]string{"k": "x"})
	assert.ErrorIs(t, err, builder.ErrParamType)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	r := registry.New()
	assert.Empty(t, r.Names())

	bc, err := registry.Lookup("bcube")
	require.NoError(t, err)
	bc.Name = "bcube2"
	require.NoError(t, r.Register(bc))
	assert.ErrorIs(t, r.Register(bc), registry.ErrDuplicateTopology)
	assert.ErrorIs(t, r.Register(registry.Factory{Name: "empty"}), registry.ErrIncompleteFactory)

	g, err := r.Build("bcube2", map[string]any{"k": 0})
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
}
