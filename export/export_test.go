package export_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dctopo/builder"
	"github.com/katalvlaran/dctopo/core"
	"github.com/katalvlaran/dctopo/export"
)

func fatTreeDoc(t *testing.T) (*core.Graph, *export.Document) {
	t.Helper()
	g, err := builder.BuildFatTree(2, 1)
	require.NoError(t, err)
	doc, err := export.FromGraph(g, "fattree", map[string]int{"k": 2, "r": 1})
	require.NoError(t, err)
	return g, doc
}

func TestFromGraph(t *testing.T) {
	_, doc := fatTreeDoc(t)

	_, err := uuid.Parse(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "fattree", doc.Name)

	require.Len(t, doc.Hosts, 2)
	assert.Equal(t, "h1", doc.Hosts[0].Name)
	require.NotNil(t, doc.Hosts[1].Group)
	assert.Equal(t, 1, *doc.Hosts[1].Group)

	require.Len(t, doc.Switches, 5)
	assert.Equal(t, export.SwitchDesc{Name: "c1", Role: builder.RoleCore, Ports: 2}, doc.Switches[0])
	assert.Equal(t, "e5", doc.Switches[4].Name)
	assert.Equal(t, []export.LinkDesc{
		{A: "a2", B: "e3"}, {A: "a4", B: "e5"},
		{A: "c1", B: "a2"}, {A: "c1", B: "a4"},
		{A: "e3", B: "h1"}, {A: "e5", B: "h2"},
	}, doc.Links)
}

func TestEncode_YAML(t *testing.T) {
	_, doc := fatTreeDoc(t)
	doc.ID = ""

	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, doc, export.FormatYAML))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "name: fattree\n"), out)
	assert.Contains(t, out, "- name: c1\n")
	assert.Contains(t, out, "role: core\n")
	assert.Contains(t, out, "- a: c1\n")
	assert.NotContains(t, out, "id:")
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []export.Format{export.FormatYAML, export.FormatJSON} {
		f := f
		t.Run(string(f), func(t *testing.T) {
			g, err := builder.BuildBCube(1, 3)
			require.NoError(t, err)
			doc, err := export.FromGraph(g, "bcube", map[string]int{"k": 1, "n": 3})
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, export.Encode(&buf, doc, f))
			back, err := export.Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, doc, back)

			g2, err := back.ToGraph()
			require.NoError(t, err)
			assert.Equal(t, g.Nodes(), g2.Nodes())
			assert.Equal(t, g.Links(), g2.Links())
			for _, id := range g.Nodes() {
				want, _ := g.Node(id)
				got, err := g2.Node(id)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestToGraph_FatTreeOrder(t *testing.T) {
	g, doc := fatTreeDoc(t)

	g2, err := doc.ToGraph()
	require.NoError(t, err)
	// Hosts are restored before switches; each kind keeps its order.
	assert.Equal(t, g.Hosts(), g2.Hosts())
	assert.Equal(t, g.Switches(), g2.Switches())
	assert.Equal(t, g.Links(), g2.Links())
}

func TestToGraph_Invalid(t *testing.T) {
	cases := map[string]func(d *export.Document){
		"ports mismatch":   func(d *export.Document) { d.Switches[0].Ports = 3 },
		"unknown endpoint": func(d *export.Document) { d.Links[0].B = "e99" },
		"duplicate host":   func(d *export.Document) { d.Hosts[1].Name = "h1" },
		"self link":        func(d *export.Document) { d.Links[0].B = d.Links[0].A },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			_, doc := fatTreeDoc(t)
			mutate(doc)
			_, err := doc.ToGraph()
			assert.ErrorIs(t, err, export.ErrInvalidDocument)
		})
	}

	_, doc := fatTreeDoc(t)
	doc.Links[0].B = "e99"
	_, err := doc.ToGraph()
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestFiles(t *testing.T) {
	_, doc := fatTreeDoc(t)
	dir := t.TempDir()

	for _, name := range []string{"topo.yaml", "topo.yml", "topo.JSON"} {
		path := filepath.Join(dir, name)
		require.NoError(t, export.WriteFile(path, doc))
		back, err := export.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, doc, back, name)
	}

	assert.ErrorIs(t, export.WriteFile(filepath.Join(dir, "topo.txt"), doc), export.ErrUnknownFormat)
	_, err := export.ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestFormats(t *testing.T) {
	f, err := export.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, export.FormatYAML, f)
	assert.Equal(t, "application/yaml", f.ContentType())
	assert.Equal(t, "application/json", export.FormatJSON.ContentType())

	_, err = export.ParseFormat("xml")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
	assert.ErrorIs(t, export.Encode(&bytes.Buffer{}, &export.Document{}, "toml"), export.ErrUnknownFormat)
	_, err = export.Decode(strings.NewReader(""), "toml")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}
