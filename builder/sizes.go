// SPDX-License-Identifier: MIT
// Package: dctopo/builder
//
// sizes.go - closed-form node/link counts of each fabric.
//
// Contract:
//   • BCubeSize / FatTreeSize apply exactly the validation of their
//     constructors and return ErrParamRange on the same inputs.
//   • Every product is overflow-checked; an unrepresentable size is a
//     range error, never a wrapped negative number.
//
// Formulas:
//   BCube(k,n):   hosts = n^(k+1); switches = (k+1)·n^k; links = (k+1)·n^(k+1).
//   FatTree(k,r): core = (k/2)²/r; aggregation = edge = k·k/2; hosts = k³/4;
//                 links = k·(k/2)² + core·k + hosts.

package builder

// Size holds the exact element counts of a generated fabric.
type Size struct {
	Hosts    int
	Switches int
	Links    int

	// PerLevel is the number of switches on each BCube level (n^k).
	PerLevel int

	// Core, Aggregation and Edge split Fat-Tree switches by layer.
	Core        int
	Aggregation int
	Edge        int
}

// Nodes returns Hosts + Switches.
func (s Size) Nodes() int {
	return s.Hosts + s.Switches
}

// BCubeSize returns the counts BCube(k, n) will produce.
//
// Errors:
//   - ErrParamRange: n < 1, k < 0, or a count overflows int.
//
// Complexity: O(k).
func BCubeSize(k, n int) (Size, error) {
	if err := validateMin(MethodBCube, "n", n, MinBCubePorts); err != nil {
		return Size{}, err
	}
	if err := validateMin(MethodBCube, "k", k, MinBCubeLevel); err != nil {
		return Size{}, err
	}

	hosts, ok := checkedPow(n, k+1)
	if !ok {
		return Size{}, paramErrorf(MethodBCube, ErrParamRange, "n^(k+1) overflows for k=%d, n=%d", k, n)
	}
	perLevel, _ := checkedPow(n, k) // ≤ hosts, cannot overflow
	switches, ok1 := checkedMul(k+1, perLevel)
	links, ok2 := checkedMul(k+1, hosts)
	_, ok3 := checkedAdd(hosts, switches)
	if !ok1 || !ok2 || !ok3 {
		return Size{}, paramErrorf(MethodBCube, ErrParamRange, "size overflows for k=%d, n=%d", k, n)
	}

	return Size{Hosts: hosts, Switches: switches, Links: links, PerLevel: perLevel}, nil
}

// FatTreeSize returns the counts FatTree(k, r) will produce.
//
// Validation order: k ≥ 2, k even, r ≥ 1, (k/2) divisible by r.
//
// Errors:
//   - ErrParamRange: any of the above fails, or a count overflows int.
//
// Complexity: O(1).
func FatTreeSize(k, r int) (Size, error) {
	if err := validateMin(MethodFatTree, "k", k, MinFatTreePorts); err != nil {
		return Size{}, err
	}
	if err := validateEven(MethodFatTree, "k", k); err != nil {
		return Size{}, err
	}
	if err := validateMin(MethodFatTree, "r", r, MinOversubscription); err != nil {
		return Size{}, err
	}
	half := k / 2
	if err := validateDivides(MethodFatTree, "k/2", half, "r", r); err != nil {
		return Size{}, err
	}

	halfSq, ok1 := checkedMul(half, half)
	perLayer, ok2 := checkedMul(k, half)
	hosts, ok3 := checkedMul(k, halfSq)
	if !ok1 || !ok2 || !ok3 {
		return Size{}, paramErrorf(MethodFatTree, ErrParamRange, "size overflows for k=%d", k)
	}
	nCore := halfSq / r
	coreLinks, ok4 := checkedMul(nCore, k)
	switches, ok5 := checkedAdd(nCore, 2*perLayer)
	podLinks := hosts // k·(k/2)² aggregation–edge links equal the host count
	links, ok6 := checkedAdd(podLinks, coreLinks)
	links, ok7 := checkedAdd(links, hosts)
	_, ok8 := checkedAdd(hosts, switches)
	if !ok4 || !ok5 || !ok6 || !ok7 || !ok8 {
		return Size{}, paramErrorf(MethodFatTree, ErrParamRange, "size overflows for k=%d, r=%d", k, r)
	}

	return Size{
		Hosts:       hosts,
		Switches:    switches,
		Links:       links,
		Core:        nCore,
		Aggregation: perLayer,
		Edge:        perLayer,
	}, nil
}
