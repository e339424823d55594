package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/dctopo/core"
)

// BenchmarkAddLink measures appending host/link pairs under one switch.
func BenchmarkAddLink(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(b.N+1, b.N))
	_, _ = g.AddSwitch("S")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ := g.AddHost("h" + strconv.Itoa(i))
		_, _ = g.AddLink("S", h)
	}
}

// BenchmarkNodeAt measures positional lookup.
func BenchmarkNodeAt(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1024; i++ {
		_, _ = g.AddHost("")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.NodeAt(i & 1023)
	}
}
