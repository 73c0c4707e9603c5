package routing

import (
	"errors"
	"testing"

	"github.com/netsim-go/netsim/simnet"
	"github.com/stretchr/testify/require"
)

// managedLine is r1 -- r2 -- r3 with routing enabled through a Manager.
func managedLine(t *testing.T) (*simnet.Topology, *Manager) {
	t.Helper()

	topo := newTestTopology(t)

	r1 := addNode(t, topo, "r1")
	r2 := addNode(t, topo, "r2")
	r3 := addNode(t, topo, "r3")

	addLink(t, topo, r1, r2, "10.0.0.0/30", 1)
	addLink(t, topo, r2, r3, "10.0.0.4/30", 1)

	m := NewManager(topo)
	m.EnableRoutingAll()

	return topo, m
}

func routeTo(t *testing.T, node *simnet.Node, dest, mask string) (simnet.Route, bool) {
	t.Helper()

	for _, r := range node.Routes().Routes() {
		if r.Destination == addr(t, dest) && r.Mask == addr(t, mask) {
			return r, true
		}
	}

	return simnet.Route{}, false
}

func TestManagerTwoHopRoute(t *testing.T) {
	topo, m := managedLine(t)

	require.NoError(t, m.BuildRoutingDatabase())
	require.NoError(t, m.InitializeRoutes())

	r1, ok := topo.Node("r1")
	require.True(t, ok)

	// r1 reaches r3 through r2's near side of the shared link.
	entry, ok := routeTo(t, r1, "0.0.0.3", "255.255.255.255")
	require.True(t, ok, "r1 is missing its host entry for r3:\n%s", r1.Routes())

	require.Equal(t, addr(t, "10.0.0.2"), entry.NextHop)
	require.Equal(t, 0, entry.Interface)
	require.Equal(t, uint32(2), entry.Metric)

	// the middle router is one hop from both ends
	r2, ok := topo.Node("r2")
	require.True(t, ok)

	entry, ok = routeTo(t, r2, "0.0.0.1", "255.255.255.255")
	require.True(t, ok)
	require.Equal(t, uint32(1), entry.Metric)

	entry, ok = routeTo(t, r2, "0.0.0.3", "255.255.255.255")
	require.True(t, ok)
	require.Equal(t, uint32(1), entry.Metric)
}

func TestManagerStubNetworkRoute(t *testing.T) {
	topo, m := managedLine(t)

	r3, ok := topo.Node("r3")
	require.True(t, ok)
	r3.AddStubNetwork(prefix(t, "10.9.0.0/24"), 1)

	require.NoError(t, m.BuildRoutingDatabase())
	require.NoError(t, m.InitializeRoutes())

	r1, ok := topo.Node("r1")
	require.True(t, ok)

	entry, ok := routeTo(t, r1, "10.9.0.0", "255.255.255.0")
	require.True(t, ok)
	require.Equal(t, addr(t, "10.0.0.2"), entry.NextHop)
	require.Equal(t, uint32(3), entry.Metric)

	// r3's own stub is directly attached; no entry for it locally
	_, ok = routeTo(t, r3, "10.9.0.0", "255.255.255.0")
	require.False(t, ok)
}

func TestManagerIsolatedStubRouter(t *testing.T) {
	topo, m := managedLine(t)

	// a router with no links, only a stub network
	lone := addNode(t, topo, "lone")
	lone.AddStubNetwork(prefix(t, "10.8.0.0/24"), 1)
	m.EnableRouting(lone)

	require.NoError(t, m.BuildRoutingDatabase())

	lsa, err := m.Database().Lookup(addr(t, "0.0.0.4"))
	require.NoError(t, err)
	require.Equal(t, 1, lsa.NLinkRecords())

	require.NoError(t, m.InitializeRoutes())

	// nobody can reach it, and it can reach nobody
	require.Equal(t, 0, lone.Routes().Len())

	r1, ok := topo.Node("r1")
	require.True(t, ok)
	_, ok = routeTo(t, r1, "10.8.0.0", "255.255.255.0")
	require.False(t, ok)
}

func TestManagerBuildFailureIsolation(t *testing.T) {
	topo, m := managedLine(t)

	r3, ok := topo.Node("r3")
	require.True(t, ok)

	// find the r2<->r3 channel and overload it
	var ch *simnet.Channel
	for _, ifc := range r3.Interfaces() {
		if ifc.Channel() != nil {
			ch = ifc.Channel()
		}
	}
	require.NotNil(t, ch)

	extra := addNode(t, topo, "extra")
	_, err := topo.AddInterface(extra, ch, addr(t, "10.0.0.7"), prefix(t, "10.0.0.4/30"), 1)
	require.NoError(t, err)

	err = m.BuildRoutingDatabase()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedChannel))

	// r1 saw only well-formed channels and is in the database
	_, err = m.Database().Lookup(addr(t, "0.0.0.1"))
	require.NoError(t, err)
	_, err = m.Database().Lookup(addr(t, "0.0.0.2"))
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestManagerInitializeBeforeBuild(t *testing.T) {
	topo, m := managedLine(t)

	require.NoError(t, m.InitializeRoutes())

	for _, name := range topo.SortedNodeNames() {
		n, ok := topo.Node(name)
		require.True(t, ok)
		require.Equal(t, 0, n.Routes().Len())
	}
}

func TestManagerReplacesStaleRoutes(t *testing.T) {
	topo, m := managedLine(t)

	r1, ok := topo.Node("r1")
	require.True(t, ok)

	// pre-install garbage that must not survive initialization
	r1.Routes().Replace([]simnet.Route{
		{
			Destination: addr(t, "192.0.2.0"),
			Mask:        addr(t, "255.255.255.0"),
			NextHop:     addr(t, "192.0.2.1"),
		},
	})

	require.NoError(t, m.BuildRoutingDatabase())
	require.NoError(t, m.InitializeRoutes())

	_, ok = routeTo(t, r1, "192.0.2.0", "255.255.255.0")
	require.False(t, ok)
	require.NotEqual(t, 0, r1.Routes().Len())
}

func TestManagerParallelMatchesSequential(t *testing.T) {
	_, m := managedLine(t)

	require.NoError(t, m.BuildRoutingDatabase())
	require.NoError(t, m.InitializeRoutes())

	sequential := make(map[string][]simnet.Route)
	for _, r := range m.Routers() {
		sequential[r.Node().Name()] = r.Node().Routes().Routes()
	}

	m.SetParallel(true)
	require.NoError(t, m.InitializeRoutes())

	for _, r := range m.Routers() {
		require.Equal(t, sequential[r.Node().Name()], r.Node().Routes().Routes(), "node %s diverged under parallel SPF", r.Node().Name())
	}
}

func TestManagerRebuildAfterTopologyChange(t *testing.T) {
	topo, m := managedLine(t)

	require.NoError(t, m.BuildRoutingDatabase())
	require.NoError(t, m.InitializeRoutes())

	r3, ok := topo.Node("r3")
	require.True(t, ok)
	r3.AddStubNetwork(prefix(t, "10.9.0.0/24"), 1)

	// the new stub is invisible until the database is rebuilt
	r1, ok := topo.Node("r1")
	require.True(t, ok)
	_, ok = routeTo(t, r1, "10.9.0.0", "255.255.255.0")
	require.False(t, ok)

	require.NoError(t, m.BuildRoutingDatabase())
	require.NoError(t, m.InitializeRoutes())

	_, ok = routeTo(t, r1, "10.9.0.0", "255.255.255.0")
	require.True(t, ok)
}
