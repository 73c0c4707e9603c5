package simnet

import (
	"fmt"
	"net/netip"
	"strings"
)

// A Route is one forwarding entry: destination network or host, mask,
// next hop, outgoing interface index, and the accumulated metric.
type Route struct {
	Destination netip.Addr
	Mask        netip.Addr
	NextHop     netip.Addr
	Interface   int
	Metric      uint32
}

func (r Route) String() string {
	return fmt.Sprintf("%s mask %s via %s if %d metric %d", r.Destination, r.Mask, r.NextHop, r.Interface, r.Metric)
}

// RoutingTable is a node's forwarding table. The routing core installs
// entries with Replace; installs are full replacements, never merges.
type RoutingTable struct {
	routes []Route
}

func NewRoutingTable() *RoutingTable {
	return &RoutingTable{}
}

// Replace discards all previously installed entries and installs the
// given ones.
func (rt *RoutingTable) Replace(routes []Route) {
	rt.routes = make([]Route, len(routes))
	copy(rt.routes, routes)
}

func (rt *RoutingTable) Len() int {
	return len(rt.routes)
}

// Routes returns a copy of the installed entries.
func (rt *RoutingTable) Routes() []Route {
	routes := make([]Route, len(rt.routes))
	copy(routes, rt.routes)
	return routes
}

// Lookup returns the most specific entry matching dst.
func (rt *RoutingTable) Lookup(dst netip.Addr) (Route, bool) {
	var best Route
	bestLen := -1
	found := false

	for _, r := range rt.routes {
		if !matches(dst, r.Destination, r.Mask) {
			continue
		}

		if l := maskLen(r.Mask); l > bestLen {
			best = r
			bestLen = l
			found = true
		}
	}

	return best, found
}

func (rt *RoutingTable) String() string {
	var sb strings.Builder
	for _, r := range rt.routes {
		fmt.Fprintf(&sb, "%s\n", r)
	}
	return sb.String()
}

func matches(dst, network, mask netip.Addr) bool {
	d := dst.As4()
	n := network.As4()
	m := mask.As4()

	for i := range d {
		if d[i]&m[i] != n[i]&m[i] {
			return false
		}
	}

	return true
}

func maskLen(mask netip.Addr) int {
	n := 0
	for _, b := range mask.As4() {
		for ; b&0x80 != 0; b <<= 1 {
			n++
		}
	}
	return n
}
