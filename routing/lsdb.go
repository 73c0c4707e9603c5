package routing

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"golang.org/x/exp/slices"
)

// Database is the link-state database: every discovered router's LSA,
// keyed by the originating router's identity. It is rebuilt wholesale
// on every Build; there's no partial invalidation.
type Database struct {
	lsas map[netip.Addr]*RouterLSA
}

func NewDatabase() *Database {
	return &Database{
		lsas: make(map[netip.Addr]*RouterLSA),
	}
}

// Build clears the database and repopulates it by polling every
// router's discovery, visiting routers in ascending node index order
// so that repeated builds over an unchanged topology are reproducible.
//
// A node whose discovery fails contributes nothing, but the failure
// doesn't disturb any other node's entries; all per-node errors come
// back joined.
func (db *Database) Build(routers []*Router) error {
	db.Clear()

	sorted := make([]*Router, len(routers))
	copy(sorted, routers)
	slices.SortFunc(sorted, func(a, b *Router) bool {
		return a.Node().Index() < b.Node().Index()
	})

	var errs []error

	for _, r := range sorted {
		n, err := r.DiscoverLSAs()
		if err != nil {
			errs = append(errs, fmt.Errorf("node %s: %w", r.Node().Name(), err))
			continue
		}

		for i := 0; i < n; i++ {
			lsa, err := r.LSA(i)
			if err != nil {
				errs = append(errs, err)
				continue
			}

			db.Insert(lsa.AdvertisingRouter(), lsa)
		}
	}

	return errors.Join(errs...)
}

// Insert adds or replaces the LSA for the given router identity.
func (db *Database) Insert(routerID netip.Addr, lsa *RouterLSA) {
	db.lsas[routerID] = lsa
}

// Lookup returns the LSA advertised by routerID, or ErrNotFound if
// that router has no advertisement.
func (db *Database) Lookup(routerID netip.Addr) (*RouterLSA, error) {
	lsa, ok := db.lsas[routerID]
	if !ok {
		return nil, fmt.Errorf("lsa for router %s: %w", routerID, ErrNotFound)
	}

	return lsa, nil
}

func (db *Database) Clear() {
	db.lsas = make(map[netip.Addr]*RouterLSA)
}

func (db *Database) Len() int {
	return len(db.lsas)
}

// RouterIDs returns the database keys in ascending address order.
func (db *Database) RouterIDs() []netip.Addr {
	ids := make([]netip.Addr, 0, len(db.lsas))
	for id := range db.lsas {
		ids = append(ids, id)
	}

	slices.SortFunc(ids, func(a, b netip.Addr) bool {
		return a.Less(b)
	})

	return ids
}

// Copy returns a deep clone of the database. Per-root SPF runs that
// execute concurrently each work on their own clone, since the SPF
// bookkeeping mutates LSA statuses.
func (db *Database) Copy() *Database {
	c := NewDatabase()
	for id, lsa := range db.lsas {
		c.lsas[id] = lsa.Copy()
	}

	return c
}

// resetStatus marks every LSA NotExplored. Every SPF run starts here;
// prior runs' bookkeeping is never trusted.
func (db *Database) resetStatus() {
	for _, lsa := range db.lsas {
		lsa.SetStatus(SPFNotExplored)
	}
}

func (db *Database) String() string {
	var sb strings.Builder
	for _, id := range db.RouterIDs() {
		sb.WriteString(db.lsas[id].String())
	}
	return sb.String()
}
