package routing

import (
	"errors"
	"fmt"

	"github.com/netsim-go/netsim/simnet"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Manager orchestrates the routing core: it owns the link-state
// database, knows which nodes carry routing agents, and turns the
// database into per-node forwarding tables.
//
// The intended call order is BuildRoutingDatabase then
// InitializeRoutes. Initializing against an empty database isn't an
// error; it just installs empty tables.
type Manager struct {
	topo     *simnet.Topology
	db       *Database
	routers  []*Router
	parallel bool
}

func NewManager(topo *simnet.Topology) *Manager {
	return &Manager{
		topo: topo,
		db:   NewDatabase(),
	}
}

// SetParallel makes InitializeRoutes run per-root SPF computations
// concurrently. Each run gets its own clone of the frozen database, so
// results are identical to the sequential ones.
func (m *Manager) SetParallel(parallel bool) {
	m.parallel = parallel
}

func (m *Manager) Database() *Database {
	return m.db
}

func (m *Manager) Routers() []*Router {
	return m.routers
}

// EnableRouting attaches a routing agent to node and registers it with
// the manager.
func (m *Manager) EnableRouting(node *simnet.Node) *Router {
	r := NewRouter(node)
	m.routers = append(m.routers, r)
	return r
}

// EnableRoutingAll turns every node in the topology into a router.
func (m *Manager) EnableRoutingAll() []*Router {
	for _, n := range m.topo.Nodes() {
		m.EnableRouting(n)
	}
	return m.routers
}

// BuildRoutingDatabase rebuilds the link-state database by polling
// every router's discovery. Per-node failures come back joined; nodes
// that discovered cleanly are in the database regardless.
func (m *Manager) BuildRoutingDatabase() error {
	err := m.db.Build(m.routers)

	logrus.WithFields(logrus.Fields{
		"routers": len(m.routers),
		"lsas":    m.db.Len(),
	}).Info("built routing database")

	return err
}

// InitializeRoutes treats every router as an SPF root, computes its
// shortest-path tree over the database, and replaces the forwarding
// table on its node with the result. The replacement is total: stale
// entries from a previous initialization never survive.
func (m *Manager) InitializeRoutes() error {
	roots := make([]*Router, len(m.routers))
	copy(roots, m.routers)
	slices.SortFunc(roots, func(a, b *Router) bool {
		return a.Node().Index() < b.Node().Index()
	})

	if m.parallel {
		return m.initializeRoutesParallel(roots)
	}

	var errs []error

	for _, root := range roots {
		if err := m.initializeRoot(m.db, root); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (m *Manager) initializeRoutesParallel(roots []*Router) error {
	var g errgroup.Group

	for _, root := range roots {
		root := root

		// SPF bookkeeping writes LSA statuses, so concurrent roots
		// each run over their own clone of the frozen database.
		db := m.db.Copy()

		g.Go(func() error {
			return m.initializeRoot(db, root)
		})
	}

	return g.Wait()
}

func (m *Manager) initializeRoot(db *Database, root *Router) error {
	routes, err := runSPF(db, root)
	if err != nil {
		return fmt.Errorf("spf root %s: %w", root.RouterID(), err)
	}

	root.Node().Routes().Replace(routes)

	logrus.WithFields(logrus.Fields{
		"node":   root.Node().Name(),
		"router": root.RouterID(),
		"routes": len(routes),
	}).Debug("installed routes")

	return nil
}
