package builder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dctopo/builder"
)

// ExampleBCube builds the smallest two-level BCube and prints its wiring.
func ExampleBCube() {
	g, err := builder.BuildGraph(nil, nil, builder.BCube(1, 2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("hosts:", g.Hosts())
	fmt.Println("switches:", g.Switches())
	for _, l := range g.Links()[4:] {
		fmt.Println(l)
	}
	// Output:
	// hosts: [h0_0 h0_1 h1_0 h1_1]
	// switches: [s0_0 s0_1 s1_0 s1_1]
	// s1_0 -- h0_0
	// s1_0 -- h1_0
	// s1_1 -- h0_1
	// s1_1 -- h1_1
}

// ExampleFatTree shows the core layer of a 4-port Fat-Tree.
func ExampleFatTree() {
	g, err := builder.BuildFatTree(4, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	nbrs, _ := g.NeighborIDs("c3")
	fmt.Println("c3 ->", nbrs)
	fmt.Println(g.HostCount(), "hosts,", g.SwitchCount(), "switches,", g.LinkCount(), "links")
	// Output:
	// c3 -> [a6 a10 a14 a18]
	// 16 hosts, 20 switches, 48 links
}

// ExampleFatTree_invalid demonstrates branching on the range sentinel.
func ExampleFatTree_invalid() {
	_, err := builder.BuildFatTree(6, 2)
	fmt.Println(errors.Is(err, builder.ErrParamRange))
	fmt.Println(err)
	// Output:
	// true
	// BuildGraph: FatTree: k/2=3 must be divisible by r=2: builder: parameter out of range
}
