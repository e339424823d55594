package bfs_test

import (
	"testing"

	"github.com/katalvlaran/dctopo/bfs"
	"github.com/katalvlaran/dctopo/builder"
)

// BenchmarkBFS_BCube measures a single-source search over BCube(3, 4)
// (256 hosts, 256 switches, 1024 links).
func BenchmarkBFS_BCube(b *testing.B) {
	g, err := builder.BuildBCube(3, 4)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount() + g.LinkCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "h0_0")
	}
}

// BenchmarkBFS_FatTree measures a single-source search over FatTree(16, 1)
// (1024 hosts, 320 switches).
func BenchmarkBFS_FatTree(b *testing.B) {
	g, err := builder.BuildFatTree(16, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount() + g.LinkCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "h1")
	}
}
