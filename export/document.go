// Package export converts a generated core.Graph into a topology description
// document (hosts, switches with port counts, links) and encodes it as YAML
// or JSON for an external emulation launcher. Documents decode back into a
// core.Graph for verification.
package export

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/dctopo/core"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates a format name or file extension other than
	// yaml/yml/json.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrInvalidDocument indicates a document whose contents cannot describe a
	// graph (declared ports disagree with links, unknown endpoints, ...).
	ErrInvalidDocument = errors.New("export: invalid document")
)

// Document is the serialised topology description.
type Document struct {
	// ID identifies one generation run; it is not part of the topology.
	ID       string         `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string         `json:"name" yaml:"name"`
	Params   map[string]int `json:"params,omitempty" yaml:"params,omitempty"`
	Hosts    []HostDesc     `json:"hosts" yaml:"hosts"`
	Switches []SwitchDesc   `json:"switches" yaml:"switches"`
	Links    []LinkDesc     `json:"links" yaml:"links"`
}

// HostDesc describes one host. Group is the Fat-Tree pod, omitted when the
// host belongs to none.
type HostDesc struct {
	Name  string `json:"name" yaml:"name"`
	Group *int   `json:"group,omitempty" yaml:"group,omitempty"`
}

// SwitchDesc describes one switch and its port count (degree).
type SwitchDesc struct {
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role,omitempty" yaml:"role,omitempty"`
	Group *int   `json:"group,omitempty" yaml:"group,omitempty"`
	Ports int    `json:"ports" yaml:"ports"`
}

// LinkDesc is an undirected link between two named nodes.
type LinkDesc struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

// FromGraph describes g. name and params label the generator that produced
// it; a fresh random ID is attached.
func FromGraph(g *core.Graph, name string, params map[string]int) (*Document, error) {
	doc := &Document{
		ID:       uuid.NewString(),
		Name:     name,
		Params:   params,
		Hosts:    make([]HostDesc, 0, g.HostCount()),
		Switches: make([]SwitchDesc, 0, g.SwitchCount()),
	}

	for _, id := range g.Hosts() {
		n, err := g.Node(id)
		if err != nil {
			return nil, fmt.Errorf("export: FromGraph: %w", err)
		}
		doc.Hosts = append(doc.Hosts, HostDesc{Name: id, Group: groupPtr(n.Group)})
	}
	for _, id := range g.Switches() {
		n, err := g.Node(id)
		if err != nil {
			return nil, fmt.Errorf("export: FromGraph: %w", err)
		}
		ports, err := g.Ports(id)
		if err != nil {
			return nil, fmt.Errorf("export: FromGraph: %w", err)
		}
		doc.Switches = append(doc.Switches, SwitchDesc{
			Name:  id,
			Role:  n.Role,
			Group: groupPtr(n.Group),
			Ports: ports,
		})
	}
	links := g.Links()
	doc.Links = make([]LinkDesc, len(links))
	for i, l := range links {
		doc.Links[i] = LinkDesc{A: l.A, B: l.B}
	}

	return doc, nil
}

// ToGraph rebuilds a core.Graph: hosts first, then switches, then links, each
// in document order. Declared switch ports must equal the rebuilt degree.
func (d *Document) ToGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(len(d.Hosts)+len(d.Switches), len(d.Links)))

	for _, h := range d.Hosts {
		if _, err := g.AddHost(h.Name, core.WithRole(core.KindHost.String()), core.WithGroup(groupVal(h.Group))); err != nil {
			return nil, fmt.Errorf("export: host %q: %w: %w", h.Name, ErrInvalidDocument, err)
		}
	}
	for _, s := range d.Switches {
		opts := []core.NodeOption{core.WithGroup(groupVal(s.Group))}
		if s.Role != "" {
			opts = append(opts, core.WithRole(s.Role))
		}
		if _, err := g.AddSwitch(s.Name, opts...); err != nil {
			return nil, fmt.Errorf("export: switch %q: %w: %w", s.Name, ErrInvalidDocument, err)
		}
	}
	for _, l := range d.Links {
		if _, err := g.AddLink(l.A, l.B); err != nil {
			return nil, fmt.Errorf("export: link %s -- %s: %w: %w", l.A, l.B, ErrInvalidDocument, err)
		}
	}
	for _, s := range d.Switches {
		ports, _ := g.Ports(s.Name)
		if ports != s.Ports {
			return nil, fmt.Errorf("export: switch %q declares %d ports, has %d links: %w",
				s.Name, s.Ports, ports, ErrInvalidDocument)
		}
	}

	return g, nil
}

func groupPtr(group int) *int {
	if group == core.NoGroup {
		return nil
	}

	return &group
}

func groupVal(p *int) int {
	if p == nil {
		return core.NoGroup
	}

	return *p
}
