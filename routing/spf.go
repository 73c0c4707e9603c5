package routing

import (
	"container/heap"
	"errors"
	"fmt"
	"net/netip"

	"github.com/netsim-go/netsim/simnet"
	"golang.org/x/exp/slices"
)

type VertexType uint8

const (
	VertexRouter VertexType = iota + 1
	VertexNetwork
)

func (t VertexType) String() string {
	switch t {
	case VertexRouter:
		return "Router"
	case VertexNetwork:
		return "Network"
	default:
		return fmt.Sprintf("VertexType(%d)", uint8(t))
	}
}

// Vertices live in a growable arena and refer to each other by index.
// The whole arena belongs to one SPF run and is dropped in bulk when
// the run's routes have been extracted, so parent/child links can't
// dangle and nothing carries over to the next root.
type vertexRef int

type spfVertex struct {
	vertexType VertexType
	vertexID   netip.Addr

	// mask is only meaningful for network vertices.
	mask netip.Addr

	// distanceFromRoot is defined once the vertex reaches the tree.
	distanceFromRoot uint32

	parents  []vertexRef
	children []vertexRef

	// lsa backs router vertices; network vertices have none. SPF
	// status for a router vertex is kept on its LSA, exactly where
	// discovery left it NotExplored.
	lsa    *RouterLSA
	status SPFStatus

	heapIndex int
}

type vertexKey struct {
	vertexType VertexType
	vertexID   netip.Addr
}

type spfRun struct {
	db     *Database
	rootID netip.Addr

	vertices   []*spfVertex
	index      map[vertexKey]vertexRef
	candidates candidateHeap
}

// runSPF computes the shortest-path tree rooted at root over db and
// derives the forwarding entries to install on root's node. A root
// with no advertisement in the database (a stale or empty database)
// yields no routes, not an error.
func runSPF(db *Database, root *Router) ([]simnet.Route, error) {
	t, err := computeSPF(db, root.RouterID())
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}

	return t.extractRoutes(root)
}

// computeSPF builds the shortest-path tree itself. A nil run (and nil
// error) means the root has no advertisement.
func computeSPF(db *Database, rootID netip.Addr) (*spfRun, error) {
	t := &spfRun{
		db:     db,
		rootID: rootID,
		index:  make(map[vertexKey]vertexRef),
	}
	t.candidates.run = t

	db.resetStatus()

	rootLSA, err := db.Lookup(t.rootID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	rootRef := t.addVertex(VertexRouter, t.rootID, rootLSA, netip.Addr{})
	t.setStatus(rootRef, SPFInTree)

	// RFC 2328 section 16.1: relax from the vertex most recently added
	// to the tree, then pull the closest candidate, until the
	// candidate set drains. Anything never reached stays NotExplored.
	for v := rootRef; ; {
		if err := t.relax(v); err != nil {
			return nil, err
		}

		if t.candidates.Len() == 0 {
			break
		}

		v = heap.Pop(&t.candidates).(vertexRef)
		t.setStatus(v, SPFInTree)

		for _, p := range t.vertices[v].parents {
			t.vertices[p].children = append(t.vertices[p].children, v)
		}
	}

	return t, nil
}

func (t *spfRun) addVertex(vt VertexType, id netip.Addr, lsa *RouterLSA, mask netip.Addr) vertexRef {
	ref := vertexRef(len(t.vertices))

	t.vertices = append(t.vertices, &spfVertex{
		vertexType: vt,
		vertexID:   id,
		mask:       mask,
		lsa:        lsa,
		heapIndex:  -1,
	})
	t.index[vertexKey{vt, id}] = ref

	return ref
}

func (t *spfRun) vertex(vt VertexType, id netip.Addr, lsa *RouterLSA, mask netip.Addr) vertexRef {
	if ref, ok := t.index[vertexKey{vt, id}]; ok {
		return ref
	}

	return t.addVertex(vt, id, lsa, mask)
}

func (t *spfRun) status(ref vertexRef) SPFStatus {
	v := t.vertices[ref]
	if v.lsa != nil {
		return v.lsa.Status()
	}
	return v.status
}

func (t *spfRun) setStatus(ref vertexRef, s SPFStatus) {
	v := t.vertices[ref]
	if v.lsa != nil {
		v.lsa.SetStatus(s)
		return
	}
	v.status = s
}

// relax examines every link record of the vertex just added to the
// tree and updates the candidate set.
func (t *spfRun) relax(from vertexRef) error {
	v := t.vertices[from]
	if v.lsa == nil {
		// Network vertices are leaves.
		return nil
	}

	for i := 0; i < v.lsa.NLinkRecords(); i++ {
		lr, _ := v.lsa.LinkRecord(i)

		var ref vertexRef

		switch lr.Type() {
		case LinkTypePointToPoint:
			neighborLSA, err := t.db.Lookup(lr.LinkID())
			if errors.Is(err, ErrNotFound) {
				// The neighbor never advertised; treat the link as
				// leading off the known graph.
				continue
			} else if err != nil {
				return err
			}

			ref = t.vertex(VertexRouter, lr.LinkID(), neighborLSA, netip.Addr{})
		case LinkTypeStubNetwork:
			ref = t.vertex(VertexNetwork, lr.LinkID(), nil, lr.LinkData())
		default:
			continue
		}

		// Tree membership is final; don't even accumulate distance
		// over a link that leads back into the tree.
		if t.status(ref) == SPFInTree {
			continue
		}

		dist, err := addMetric(v.distanceFromRoot, lr.Metric())
		if err != nil {
			return fmt.Errorf("link %s of router %s: %w", lr.LinkID(), v.vertexID, err)
		}

		t.consider(from, ref, dist)
	}

	return nil
}

func (t *spfRun) consider(from, ref vertexRef, dist uint32) {
	w := t.vertices[ref]

	switch t.status(ref) {
	case SPFInTree:
		// Tree membership is final.
	case SPFNotExplored:
		w.distanceFromRoot = dist
		w.parents = []vertexRef{from}
		t.setStatus(ref, SPFCandidate)
		heap.Push(&t.candidates, ref)
	case SPFCandidate:
		if dist < w.distanceFromRoot {
			w.distanceFromRoot = dist
			w.parents = []vertexRef{from}
			heap.Fix(&t.candidates, w.heapIndex)
		} else if dist == w.distanceFromRoot && !slices.Contains(w.parents, from) {
			// Equal cost: an additional parent, distance unchanged.
			w.parents = append(w.parents, from)
		}
	}
}

func addMetric(dist, metric uint32) (uint32, error) {
	sum := dist + metric
	if sum < dist {
		return 0, fmt.Errorf("%d+%d: %w", dist, metric, ErrMetricOverflow)
	}

	return sum, nil
}

// extractRoutes derives one forwarding entry per reachable non-root
// vertex: a host entry for routers, a network entry for stubs. The
// next hop is found by walking the parent chain back to the vertex
// adjacent to the root; with equal-cost choices the lowest next-hop
// address wins, so repeated runs pick the same entry.
func (t *spfRun) extractRoutes(root *Router) ([]simnet.Route, error) {
	if len(t.vertices) == 0 {
		return nil, nil
	}

	const rootRef = vertexRef(0)

	var routes []simnet.Route
	memo := make(map[vertexRef][]vertexRef)

	for ref, v := range t.vertices {
		ref := vertexRef(ref)
		if ref == rootRef || t.status(ref) != SPFInTree {
			continue
		}

		if v.vertexType == VertexNetwork && slices.Contains(v.parents, rootRef) {
			// Directly attached stub; nothing to forward through.
			continue
		}

		hop, ok := t.chooseFirstHop(ref, rootRef, memo)
		if !ok {
			continue
		}

		nextHop, ok := t.nextHopAddr(hop)
		if !ok {
			continue
		}

		ifIndex, ok := t.outgoingInterface(root, hop)
		if !ok {
			continue
		}

		route := simnet.Route{
			Destination: v.vertexID,
			NextHop:     nextHop,
			Interface:   ifIndex,
			Metric:      v.distanceFromRoot,
		}

		if v.vertexType == VertexNetwork {
			route.Mask = v.mask
		} else {
			route.Mask = simnet.HostMask
		}

		routes = append(routes, route)
	}

	slices.SortFunc(routes, func(a, b simnet.Route) bool {
		if a.Destination != b.Destination {
			return a.Destination.Less(b.Destination)
		}
		return a.Mask.Less(b.Mask)
	})

	return routes, nil
}

// firstHops walks parent chains toward the root and collects every
// vertex adjacent to the root that this vertex is reachable through.
func (t *spfRun) firstHops(ref, rootRef vertexRef, memo map[vertexRef][]vertexRef) []vertexRef {
	if hops, ok := memo[ref]; ok {
		return hops
	}

	var hops []vertexRef

	for _, p := range t.vertices[ref].parents {
		if p == rootRef {
			if !slices.Contains(hops, ref) {
				hops = append(hops, ref)
			}
			continue
		}

		for _, h := range t.firstHops(p, rootRef, memo) {
			if !slices.Contains(hops, h) {
				hops = append(hops, h)
			}
		}
	}

	memo[ref] = hops

	return hops
}

// chooseFirstHop picks the deterministic winner among equal-cost first
// hops: the one giving the lowest next-hop address.
func (t *spfRun) chooseFirstHop(ref, rootRef vertexRef, memo map[vertexRef][]vertexRef) (*spfVertex, bool) {
	var best *spfVertex
	var bestAddr netip.Addr

	for _, h := range t.firstHops(ref, rootRef, memo) {
		hop := t.vertices[h]
		if hop.vertexType != VertexRouter {
			continue
		}

		addr, ok := t.nextHopAddr(hop)
		if !ok {
			continue
		}

		if best == nil || addr.Less(bestAddr) {
			best = hop
			bestAddr = addr
		}
	}

	return best, best != nil
}

// nextHopAddr is the first-hop router's interface address on the link
// toward the root. It comes from the neighbor's own point-to-point
// record back to the root: that record's link data is the neighbor's
// local address on the shared link.
func (t *spfRun) nextHopAddr(hop *spfVertex) (netip.Addr, bool) {
	var best netip.Addr

	for i := 0; i < hop.lsa.NLinkRecords(); i++ {
		lr, _ := hop.lsa.LinkRecord(i)
		if lr.Type() != LinkTypePointToPoint || lr.LinkID() != t.rootID {
			continue
		}

		if !best.IsValid() || lr.LinkData().Less(best) {
			best = lr.LinkData()
		}
	}

	return best, best.IsValid()
}

// outgoingInterface resolves the root's interface for the link to the
// first-hop router: the root's own point-to-point record toward it
// names the local address, which maps back to an interface index.
func (t *spfRun) outgoingInterface(root *Router, hop *spfVertex) (int, bool) {
	rootLSA := t.vertices[0].lsa

	var best netip.Addr

	for i := 0; i < rootLSA.NLinkRecords(); i++ {
		lr, _ := rootLSA.LinkRecord(i)
		if lr.Type() != LinkTypePointToPoint || lr.LinkID() != hop.vertexID {
			continue
		}

		if !best.IsValid() || lr.LinkData().Less(best) {
			best = lr.LinkData()
		}
	}

	if !best.IsValid() {
		return 0, false
	}

	ifc, ok := root.Node().InterfaceForAddr(best)
	if !ok {
		return 0, false
	}

	return ifc.Index(), true
}

// candidateHeap is the SPF candidate set: a min-heap keyed first by
// distance from the root, then by vertex identity so extraction order
// is stable.
type candidateHeap struct {
	run  *spfRun
	refs []vertexRef
}

func (h *candidateHeap) Len() int {
	return len(h.refs)
}

func (h *candidateHeap) Less(i, j int) bool {
	a := h.run.vertices[h.refs[i]]
	b := h.run.vertices[h.refs[j]]

	if a.distanceFromRoot != b.distanceFromRoot {
		return a.distanceFromRoot < b.distanceFromRoot
	}
	if a.vertexID != b.vertexID {
		return a.vertexID.Less(b.vertexID)
	}
	return a.vertexType < b.vertexType
}

func (h *candidateHeap) Swap(i, j int) {
	h.refs[i], h.refs[j] = h.refs[j], h.refs[i]
	h.run.vertices[h.refs[i]].heapIndex = i
	h.run.vertices[h.refs[j]].heapIndex = j
}

func (h *candidateHeap) Push(x any) {
	ref := x.(vertexRef)
	h.run.vertices[ref].heapIndex = len(h.refs)
	h.refs = append(h.refs, ref)
}

func (h *candidateHeap) Pop() any {
	ref := h.refs[len(h.refs)-1]
	h.refs = h.refs[:len(h.refs)-1]
	h.run.vertices[ref].heapIndex = -1
	return ref
}
