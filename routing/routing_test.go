package routing

import (
	"net/netip"
	"testing"

	"github.com/netsim-go/netsim/simnet"
	"github.com/stretchr/testify/require"
)

func newTestTopology(t *testing.T) *simnet.Topology {
	t.Helper()

	// Each test gets a fresh identity space.
	simnet.ResetRouterIDs()

	return simnet.NewTopology()
}

func addNode(t *testing.T, topo *simnet.Topology, name string) *simnet.Node {
	t.Helper()

	n, err := topo.AddNode(name)
	require.NoError(t, err)

	return n
}

func addLink(t *testing.T, topo *simnet.Topology, a, b *simnet.Node, network string, cost uint32) *simnet.Channel {
	t.Helper()

	ch, err := topo.AddLink(a, b, prefix(t, network), cost)
	require.NoError(t, err)

	return ch
}

func prefix(t *testing.T, s string) netip.Prefix {
	t.Helper()

	p, err := netip.ParsePrefix(s)
	require.NoError(t, err)

	return p
}

// lineTopology is r1 -- r2 -- r3, cost 1 per hop.
func lineTopology(t *testing.T) (*simnet.Topology, []*Router) {
	t.Helper()

	topo := newTestTopology(t)

	r1 := addNode(t, topo, "r1")
	r2 := addNode(t, topo, "r2")
	r3 := addNode(t, topo, "r3")

	addLink(t, topo, r1, r2, "10.0.0.0/30", 1)
	addLink(t, topo, r2, r3, "10.0.0.4/30", 1)

	routers := []*Router{NewRouter(r1), NewRouter(r2), NewRouter(r3)}

	return topo, routers
}

// diamondTopology has two equal-cost paths from r1 to r4.
func diamondTopology(t *testing.T) (*simnet.Topology, []*Router) {
	t.Helper()

	topo := newTestTopology(t)

	r1 := addNode(t, topo, "r1")
	r2 := addNode(t, topo, "r2")
	r3 := addNode(t, topo, "r3")
	r4 := addNode(t, topo, "r4")

	addLink(t, topo, r1, r2, "10.0.0.0/30", 1)
	addLink(t, topo, r1, r3, "10.0.0.4/30", 1)
	addLink(t, topo, r2, r4, "10.0.0.8/30", 1)
	addLink(t, topo, r3, r4, "10.0.0.12/30", 1)

	routers := []*Router{NewRouter(r1), NewRouter(r2), NewRouter(r3), NewRouter(r4)}

	return topo, routers
}

func buildDatabase(t *testing.T, routers []*Router) *Database {
	t.Helper()

	db := NewDatabase()
	require.NoError(t, db.Build(routers))

	return db
}
