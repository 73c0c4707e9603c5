// Package simnet is the in-memory topology model for the simulator. It
// plays the role the physical layer plays in a real network: nodes own
// interfaces, interfaces attach to point-to-point channels, and each
// node carries a routing table that the routing core writes into.
package simnet

import (
	"fmt"
	"net/netip"

	"golang.org/x/exp/slices"
)

// A RoutingAgent is the routing capability a node may carry. A node
// either has one (it participates in routing) or it doesn't. The
// concrete agent lives in the routing package; simnet only needs the
// node's router identity to resolve adjacencies.
type RoutingAgent interface {
	RouterID() netip.Addr
}

// StubNetwork is a locally attached leaf subnet with no routers beyond
// it. It carries no transit traffic.
type StubNetwork struct {
	Prefix netip.Prefix
	Cost   uint32
}

type Node struct {
	topo       *Topology
	index      int
	name       string
	interfaces []*Interface
	stubs      []StubNetwork
	routes     *RoutingTable
	agent      RoutingAgent
}

func (n *Node) Index() int {
	return n.index
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) Interfaces() []*Interface {
	return n.interfaces
}

// Interface returns the interface with the given index on this node.
func (n *Node) Interface(i int) (*Interface, bool) {
	if i < 0 || i >= len(n.interfaces) {
		return nil, false
	}

	return n.interfaces[i], true
}

// InterfaceForAddr returns the interface configured with addr.
func (n *Node) InterfaceForAddr(addr netip.Addr) (*Interface, bool) {
	for _, ifc := range n.interfaces {
		if ifc.addr == addr {
			return ifc, true
		}
	}

	return nil, false
}

func (n *Node) AddStubNetwork(prefix netip.Prefix, cost uint32) {
	n.stubs = append(n.stubs, StubNetwork{Prefix: prefix.Masked(), Cost: cost})
}

func (n *Node) StubNetworks() []StubNetwork {
	return n.stubs
}

func (n *Node) Routes() *RoutingTable {
	return n.routes
}

// SetAgent attaches a routing capability to the node. Passing nil
// detaches it.
func (n *Node) SetAgent(a RoutingAgent) {
	n.agent = a
}

// Agent returns the node's routing capability, if it carries one.
func (n *Node) Agent() (RoutingAgent, bool) {
	if n.agent == nil {
		return nil, false
	}

	return n.agent, true
}

type Interface struct {
	node    *Node
	index   int
	addr    netip.Addr
	prefix  netip.Prefix
	cost    uint32
	channel *Channel
}

func (ifc *Interface) Node() *Node {
	return ifc.node
}

// Index is the interface's position on its node, stable for the
// interface's lifetime.
func (ifc *Interface) Index() int {
	return ifc.index
}

func (ifc *Interface) Addr() netip.Addr {
	return ifc.addr
}

func (ifc *Interface) Prefix() netip.Prefix {
	return ifc.prefix
}

func (ifc *Interface) Cost() uint32 {
	return ifc.cost
}

func (ifc *Interface) SetCost(cost uint32) {
	ifc.cost = cost
}

func (ifc *Interface) Channel() *Channel {
	return ifc.channel
}

func (ifc *Interface) String() string {
	return fmt.Sprintf("%s#%d %s", ifc.node.name, ifc.index, ifc.addr)
}

type Topology struct {
	nodes    []*Node
	channels []*Channel
}

func NewTopology() *Topology {
	return &Topology{}
}

// AddNode creates a node with the given name. Node indexes are assigned
// in creation order, so creating nodes in a fixed order gives a
// reproducible topology.
func (t *Topology) AddNode(name string) (*Node, error) {
	for _, n := range t.nodes {
		if n.name == name {
			return nil, fmt.Errorf("node %q already exists", name)
		}
	}

	n := &Node{
		topo:   t,
		index:  len(t.nodes),
		name:   name,
		routes: NewRoutingTable(),
	}

	t.nodes = append(t.nodes, n)

	return n, nil
}

// Nodes returns all nodes in ascending index order.
func (t *Topology) Nodes() []*Node {
	return t.nodes
}

func (t *Topology) Node(name string) (*Node, bool) {
	for _, n := range t.nodes {
		if n.name == name {
			return n, true
		}
	}

	return nil, false
}

func (t *Topology) Channels() []*Channel {
	return t.channels
}

// AddLink wires a and b together with a new point-to-point channel.
// The two interfaces get the first two host addresses of network, in
// endpoint order. A zero cost means DefaultLinkCost.
func (t *Topology) AddLink(a, b *Node, network netip.Prefix, cost uint32) (*Channel, error) {
	if a == b {
		return nil, fmt.Errorf("cannot link node %q to itself", a.name)
	}

	network = network.Masked()

	ch := t.newChannel(fmt.Sprintf("%s<->%s", a.name, b.name))

	addr := network.Addr().Next()
	if _, err := t.AddInterface(a, ch, addr, network, cost); err != nil {
		return nil, err
	}

	addr = addr.Next()
	if _, err := t.AddInterface(b, ch, addr, network, cost); err != nil {
		return nil, err
	}

	return ch, nil
}

// AddInterface creates an interface on n and attaches it to ch. There
// is no limit on attachments here; a channel with more than two
// endpoints is caught later, during topology discovery.
func (t *Topology) AddInterface(n *Node, ch *Channel, addr netip.Addr, prefix netip.Prefix, cost uint32) (*Interface, error) {
	if !prefix.Contains(addr) {
		return nil, fmt.Errorf("address %s is not in %s", addr, prefix)
	}

	if cost == 0 {
		cost = DefaultLinkCost
	}

	ifc := &Interface{
		node:    n,
		index:   len(n.interfaces),
		addr:    addr,
		prefix:  prefix.Masked(),
		cost:    cost,
		channel: ch,
	}

	n.interfaces = append(n.interfaces, ifc)
	ch.attach(ifc)

	return ifc, nil
}

// SortedNodeNames is a convenience for deterministic walks keyed by
// name rather than index.
func (t *Topology) SortedNodeNames() []string {
	names := make([]string, len(t.nodes))
	for i, n := range t.nodes {
		names[i] = n.name
	}

	slices.Sort(names)

	return names
}
