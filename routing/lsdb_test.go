package routing

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuildIsDeterministic(t *testing.T) {
	_, routers := lineTopology(t)

	db := NewDatabase()
	require.NoError(t, db.Build(routers))
	first := db.String()

	require.NoError(t, db.Build(routers))
	second := db.String()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("rebuild changed database contents (-first +second):\n%s", diff)
	}
}

func TestBuildPopulatesEveryRouter(t *testing.T) {
	_, routers := lineTopology(t)
	db := buildDatabase(t, routers)

	require.Equal(t, 3, db.Len())

	for _, r := range routers {
		lsa, err := db.Lookup(r.RouterID())
		require.NoError(t, err)
		require.Equal(t, r.RouterID(), lsa.AdvertisingRouter())
	}

	// middle router advertises both neighbors
	lsa, err := db.Lookup(routers[1].RouterID())
	require.NoError(t, err)
	require.Equal(t, 2, lsa.NLinkRecords())
}

func TestLookupNotFound(t *testing.T) {
	db := NewDatabase()

	_, err := db.Lookup(addr(t, "0.0.0.9"))
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestClear(t *testing.T) {
	_, routers := lineTopology(t)
	db := buildDatabase(t, routers)

	db.Clear()

	require.Equal(t, 0, db.Len())
	_, err := db.Lookup(routers[0].RouterID())
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestBuildPartialFailureIsolation(t *testing.T) {
	topo := newTestTopology(t)

	a := addNode(t, topo, "a")
	b := addNode(t, topo, "b")
	c := addNode(t, topo, "c")

	addLink(t, topo, a, b, "10.0.0.0/30", 1)
	ch := addLink(t, topo, b, c, "10.0.0.4/30", 1)

	// corrupt only b<->c
	_, err := topo.AddInterface(c, ch, addr(t, "10.0.0.7"), prefix(t, "10.0.0.4/30"), 1)
	require.NoError(t, err)

	routers := []*Router{NewRouter(a), NewRouter(b), NewRouter(c)}

	db := NewDatabase()
	err = db.Build(routers)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedChannel))
	require.Contains(t, err.Error(), "node b")
	require.Contains(t, err.Error(), "node c")

	// a's discovery was untouched by the malformed channel
	require.Equal(t, 1, db.Len())

	lsa, err := db.Lookup(routers[0].RouterID())
	require.NoError(t, err)
	require.Equal(t, 1, lsa.NLinkRecords())

	_, err = db.Lookup(routers[1].RouterID())
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestRouterIDsSorted(t *testing.T) {
	_, routers := lineTopology(t)
	db := buildDatabase(t, routers)

	ids := db.RouterIDs()
	require.Len(t, ids, 3)

	for i := 1; i < len(ids); i++ {
		require.True(t, ids[i-1].Less(ids[i]))
	}
}

func TestDatabaseCopyIsDeep(t *testing.T) {
	_, routers := lineTopology(t)
	db := buildDatabase(t, routers)

	c := db.Copy()

	lsa, err := c.Lookup(routers[0].RouterID())
	require.NoError(t, err)

	lsa.SetStatus(SPFInTree)
	lsa.ClearLinkRecords()

	orig, err := db.Lookup(routers[0].RouterID())
	require.NoError(t, err)
	require.Equal(t, SPFNotExplored, orig.Status())
	require.Equal(t, 1, orig.NLinkRecords())
}
