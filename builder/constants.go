// Package builder defines shared constants used by fabric constructors,
// ensuring consistent defaults, labels and validation across generators.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors and log entries with the constructor name.
//-----------------------------------------------------------------------------

const (
	// MethodBCube is the canonical name for the BCube constructor.
	MethodBCube = "BCube"
	// MethodFatTree is the canonical name for the FatTree constructor.
	MethodFatTree = "FatTree"
	// MethodBuildGraph tags errors raised by the orchestrator itself.
	MethodBuildGraph = "BuildGraph"
)

//-----------------------------------------------------------------------------
// Parameter minima and defaults
//-----------------------------------------------------------------------------

// MinBCubeLevel is the smallest recursion level k; BCube_0 is n hosts on one switch.
const MinBCubeLevel = 0

// MinBCubePorts is the smallest switch port count n (hosts per BCube_0).
const MinBCubePorts = 1

// MinFatTreePorts is the smallest switch port count k (must also be even).
const MinFatTreePorts = 2

// MinOversubscription is the smallest oversubscription ratio r (1 = non-blocking).
const MinOversubscription = 1

// Defaults exposed through the registry.
const (
	DefaultBCubeLevel          = 1
	DefaultBCubePorts          = 4
	DefaultFatTreePorts        = 2
	DefaultFatTreeOversubRatio = 1
)

//-----------------------------------------------------------------------------
// Node roles (core.Node.Role)
//-----------------------------------------------------------------------------

const (
	// RoleHost marks end hosts in every fabric.
	RoleHost = "host"
	// RoleBCubeSwitch marks BCube level switches; Node.Group is the level.
	RoleBCubeSwitch = "bcube-switch"
	// RoleCore marks Fat-Tree core switches.
	RoleCore = "core"
	// RoleAggregation marks Fat-Tree aggregation switches; Node.Group is the pod.
	RoleAggregation = "aggregation"
	// RoleEdge marks Fat-Tree edge switches; Node.Group is the pod.
	RoleEdge = "edge"
)

//-----------------------------------------------------------------------------
// Label formats
//-----------------------------------------------------------------------------

const (
	bcubeHostFmt   = "h%d_%d" // h{i/n}_{i%n}
	bcubeSwitchFmt = "s%d_%d" // s{level}_{position}
	fatCoreFmt     = "c%d"    // c{1..nCore}
	fatAggFmt      = "a%d"    // a{ordinal in switch sequence, 1-based}
	fatEdgeFmt     = "e%d"    // e{ordinal in switch sequence, 1-based}
	fatHostFmt     = "h%d"    // h{1..k^3/4}
	scopeSeparator = "."
)
