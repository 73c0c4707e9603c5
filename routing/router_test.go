package routing

import (
	"errors"
	"testing"

	"github.com/netsim-go/netsim/simnet"
	"github.com/stretchr/testify/require"
)

func TestRouterIDAllocation(t *testing.T) {
	topo := newTestTopology(t)

	a := addNode(t, topo, "a")
	b := addNode(t, topo, "b")

	ra := NewRouter(a)
	rb := NewRouter(b)

	require.Equal(t, addr(t, "0.0.0.1"), ra.RouterID())
	require.Equal(t, addr(t, "0.0.0.2"), rb.RouterID())

	agent, ok := a.Agent()
	require.True(t, ok)
	require.Equal(t, ra.RouterID(), agent.RouterID())
}

func TestDiscoverPointToPoint(t *testing.T) {
	topo := newTestTopology(t)

	a := addNode(t, topo, "a")
	b := addNode(t, topo, "b")
	addLink(t, topo, a, b, "10.0.0.0/30", 5)

	ra := NewRouter(a)
	rb := NewRouter(b)

	n, err := ra.DiscoverLSAs()
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 1, ra.NumLSAs())

	lsa, err := ra.LSA(0)
	require.NoError(t, err)
	require.Equal(t, ra.RouterID(), lsa.LinkStateID())
	require.Equal(t, ra.RouterID(), lsa.AdvertisingRouter())
	require.Equal(t, 1, lsa.NLinkRecords())

	lr, ok := lsa.LinkRecord(0)
	require.True(t, ok)
	require.Equal(t, LinkTypePointToPoint, lr.Type())
	require.Equal(t, rb.RouterID(), lr.LinkID())
	require.Equal(t, addr(t, "10.0.0.1"), lr.LinkData())
	require.Equal(t, uint32(5), lr.Metric())
}

func TestDiscoverStubNetwork(t *testing.T) {
	topo := newTestTopology(t)

	a := addNode(t, topo, "a")
	a.AddStubNetwork(prefix(t, "10.1.1.0/24"), 0)

	ra := NewRouter(a)

	n, err := ra.DiscoverLSAs()
	require.NoError(t, err)
	require.Equal(t, 1, n)

	lsa, err := ra.LSA(0)
	require.NoError(t, err)
	require.Equal(t, 1, lsa.NLinkRecords())

	lr, _ := lsa.LinkRecord(0)
	require.Equal(t, LinkTypeStubNetwork, lr.Type())
	require.Equal(t, addr(t, "10.1.1.0"), lr.LinkID())
	require.Equal(t, addr(t, "255.255.255.0"), lr.LinkData())
	require.Equal(t, uint32(0), lr.Metric())
}

func TestDiscoverRebuildsFromScratch(t *testing.T) {
	topo := newTestTopology(t)

	a := addNode(t, topo, "a")
	b := addNode(t, topo, "b")
	addLink(t, topo, a, b, "10.0.0.0/30", 1)
	a.AddStubNetwork(prefix(t, "10.1.1.0/24"), 0)

	ra := NewRouter(a)
	NewRouter(b)

	_, err := ra.DiscoverLSAs()
	require.NoError(t, err)

	first, err := ra.LSA(0)
	require.NoError(t, err)

	// rediscovery over an unchanged topology replaces, never appends
	_, err = ra.DiscoverLSAs()
	require.NoError(t, err)
	require.Equal(t, 1, ra.NumLSAs())

	second, err := ra.LSA(0)
	require.NoError(t, err)
	require.Equal(t, first.NLinkRecords(), second.NLinkRecords())
}

func TestDiscoverSkipsNonRoutingNeighbor(t *testing.T) {
	topo := newTestTopology(t)

	a := addNode(t, topo, "a")
	b := addNode(t, topo, "b") // no agent attached
	addLink(t, topo, a, b, "10.0.0.0/30", 1)

	ra := NewRouter(a)

	_, err := ra.DiscoverLSAs()
	require.NoError(t, err)

	lsa, err := ra.LSA(0)
	require.NoError(t, err)
	require.Equal(t, 0, lsa.NLinkRecords())
}

func TestDiscoverMalformedChannel(t *testing.T) {
	topo := newTestTopology(t)

	a := addNode(t, topo, "a")
	b := addNode(t, topo, "b")
	c := addNode(t, topo, "c")

	ch := addLink(t, topo, a, b, "10.0.0.0/30", 1)

	// a third interface on a point-to-point channel
	_, err := topo.AddInterface(c, ch, addr(t, "10.0.0.3"), prefix(t, "10.0.0.0/30"), 1)
	require.NoError(t, err)

	ra := NewRouter(a)
	NewRouter(b)
	NewRouter(c)

	_, err = ra.DiscoverLSAs()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedChannel))
	require.Contains(t, err.Error(), ch.Name())

	// no half-built advertisement set survives
	require.Equal(t, 0, ra.NumLSAs())
}

func TestLSAAccessBeforeDiscovery(t *testing.T) {
	topo := newTestTopology(t)

	a := addNode(t, topo, "a")
	ra := NewRouter(a)

	require.Equal(t, 0, ra.NumLSAs())

	_, err := ra.LSA(0)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestLSAReturnsCopy(t *testing.T) {
	topo := newTestTopology(t)

	a := addNode(t, topo, "a")
	a.AddStubNetwork(prefix(t, "10.1.1.0/24"), 0)

	ra := NewRouter(a)
	_, err := ra.DiscoverLSAs()
	require.NoError(t, err)

	lsa, err := ra.LSA(0)
	require.NoError(t, err)

	lsa.ClearLinkRecords()

	again, err := ra.LSA(0)
	require.NoError(t, err)
	require.Equal(t, 1, again.NLinkRecords())
}

var _ simnet.RoutingAgent = (*Router)(nil)
