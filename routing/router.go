package routing

import (
	"fmt"
	"net/netip"

	"github.com/netsim-go/netsim/simnet"
	"github.com/sirupsen/logrus"
)

// A Router is the per-node routing agent. It inspects the node's local
// topology -- attached point-to-point channels and configured stub
// subnets -- and produces the node's link-state advertisements for the
// route manager to collect.
type Router struct {
	node     *simnet.Node
	routerID netip.Addr
	lsas     []*RouterLSA
}

// NewRouter attaches a routing agent to node. The router identity
// comes from the process-wide allocator and is stable for the router's
// lifetime; it serves as both link state ID and advertising router in
// everything the router originates.
func NewRouter(node *simnet.Node) *Router {
	r := &Router{
		node:     node,
		routerID: simnet.AllocateRouterID(),
	}

	node.SetAgent(r)

	return r
}

func (r *Router) RouterID() netip.Addr {
	return r.routerID
}

func (r *Router) Node() *simnet.Node {
	return r.node
}

// DiscoverLSAs walks every channel attached to every interface on the
// node and rebuilds the router's LSA set from scratch: one
// point-to-point record per adjacency, one stub record per locally
// configured stub subnet. Re-running it after a topology change picks
// up the change; re-running it without one is idempotent.
//
// A channel with other than two attached interfaces is a contract
// violation. Discovery fails for this node, identifying the channel,
// and leaves the node with no advertisements rather than a half-built
// set.
func (r *Router) DiscoverLSAs() (int, error) {
	r.clearLSAs()

	lsa := NewRouterLSA(SPFNotExplored, r.routerID, r.routerID)

	for _, ifc := range r.node.Interfaces() {
		ch := ifc.Channel()
		if ch == nil {
			continue
		}

		peer, err := adjacentInterface(ifc, ch)
		if err != nil {
			return 0, err
		}

		agent, ok := peer.Node().Agent()
		if !ok {
			// The far side isn't a router; the link leads nowhere
			// we can advertise.
			logrus.WithFields(logrus.Fields{
				"node":    r.node.Name(),
				"channel": ch.Name(),
			}).Debug("skipping adjacency to non-routing node")
			continue
		}

		lr := NewLinkRecord(LinkTypePointToPoint, agent.RouterID(), ifc.Addr(), ifc.Cost())
		lsa.AddLinkRecord(lr)
	}

	for _, stub := range r.node.StubNetworks() {
		lr := NewLinkRecord(LinkTypeStubNetwork, stub.Prefix.Addr(), simnet.MaskOf(stub.Prefix), stub.Cost)
		lsa.AddLinkRecord(lr)
	}

	r.lsas = append(r.lsas, lsa)

	logrus.WithFields(logrus.Fields{
		"node":   r.node.Name(),
		"router": r.routerID,
		"links":  lsa.NLinkRecords(),
	}).Debug("discovered LSAs")

	return len(r.lsas), nil
}

// NumLSAs reports the size of the most recently discovered LSA set.
// Before any discovery it's zero, which is not an error.
func (r *Router) NumLSAs() int {
	return len(r.lsas)
}

// LSA returns a deep copy of the nth advertisement, or ErrNotFound if
// n is out of range.
func (r *Router) LSA(n int) (*RouterLSA, error) {
	if n < 0 || n >= len(r.lsas) {
		return nil, fmt.Errorf("lsa %d of router %s: %w", n, r.routerID, ErrNotFound)
	}

	return r.lsas[n].Copy(), nil
}

func (r *Router) clearLSAs() {
	r.lsas = nil
}

// adjacentInterface resolves the far end of a point-to-point channel:
// the exactly-one interface on ch that isn't local.
func adjacentInterface(local *simnet.Interface, ch *simnet.Channel) (*simnet.Interface, error) {
	if n := ch.NInterfaces(); n != 2 {
		return nil, fmt.Errorf("%s: %w: %d attached interfaces", ch, ErrMalformedChannel, n)
	}

	for i := 0; i < ch.NInterfaces(); i++ {
		ifc, _ := ch.Interface(i)
		if ifc != local {
			return ifc, nil
		}
	}

	return nil, fmt.Errorf("%s: local interface %s not attached", ch, local)
}
