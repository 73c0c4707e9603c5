// Package routing is the link-state routing core of the simulator. It
// discovers per-node topology into router link-state advertisements,
// aggregates them into a link-state database, and runs a shortest path
// first computation (RFC 2328, section 16.1) per root to populate each
// node's forwarding table.
package routing

import (
	"fmt"
	"net/netip"
	"strings"
)

type LinkType uint8

// Link types as defined by OSPF. Discovery only produces PointToPoint
// and StubNetwork; the rest exist for OSPF compatibility.
const (
	LinkTypeUnknown LinkType = iota
	LinkTypePointToPoint
	LinkTypeTransitNetwork
	LinkTypeStubNetwork
	LinkTypeVirtualLink
)

func (t LinkType) String() string {
	switch t {
	case LinkTypeUnknown:
		return "Unknown"
	case LinkTypePointToPoint:
		return "PointToPoint"
	case LinkTypeTransitNetwork:
		return "TransitNetwork"
	case LinkTypeStubNetwork:
		return "StubNetwork"
	case LinkTypeVirtualLink:
		return "VirtualLink"
	default:
		return fmt.Sprintf("LinkType(%d)", uint8(t))
	}
}

// A LinkRecord is one directed edge in the topology graph. LinkID and
// LinkData have type-dependent meanings; always branch on Type before
// interpreting them:
//
//   - PointToPoint: LinkID is the neighboring router's identity,
//     LinkData is the local side's interface address.
//   - StubNetwork: LinkID is the subnet's network address, LinkData is
//     the network mask.
//
// Metric is an abstract additive cost. Sums of metrics along a path
// must be meaningful, so use something like delay, not raw bandwidth.
type LinkRecord struct {
	linkType LinkType
	linkID   netip.Addr
	linkData netip.Addr
	metric   uint32
}

func NewLinkRecord(linkType LinkType, linkID, linkData netip.Addr, metric uint32) LinkRecord {
	return LinkRecord{
		linkType: linkType,
		linkID:   linkID,
		linkData: linkData,
		metric:   metric,
	}
}

func (lr LinkRecord) Type() LinkType {
	return lr.linkType
}

func (lr LinkRecord) LinkID() netip.Addr {
	return lr.linkID
}

func (lr LinkRecord) LinkData() netip.Addr {
	return lr.linkData
}

func (lr LinkRecord) Metric() uint32 {
	return lr.metric
}

func (lr LinkRecord) String() string {
	return fmt.Sprintf("%s id %s data %s metric %d", lr.linkType, lr.linkID, lr.linkData, lr.metric)
}

// SPFStatus is the tristate flag the SPF computation uses to track a
// vertex: not yet considered, in the candidate set, or placed in the
// shortest-path tree. It's bookkeeping for a single run, never state
// that survives between runs.
type SPFStatus uint8

const (
	SPFNotExplored SPFStatus = iota
	SPFCandidate
	SPFInTree
)

func (s SPFStatus) String() string {
	switch s {
	case SPFNotExplored:
		return "NotExplored"
	case SPFCandidate:
		return "Candidate"
	case SPFInTree:
		return "InTree"
	default:
		return fmt.Sprintf("SPFStatus(%d)", uint8(s))
	}
}

// A RouterLSA is a router's link-state advertisement: the router's
// identity plus the ordered set of link records it advertises. This is
// a snapshot model -- the database is rebuilt wholesale each discovery
// cycle -- so there is no age or sequence number. See RFC 2328,
// Appendix A.
//
// The LSA owns its records outright. They're value types in a
// contiguous slice, so copying and clearing can't leave anything
// dangling.
type RouterLSA struct {
	linkStateID       netip.Addr
	advertisingRouter netip.Addr
	status            SPFStatus
	records           []LinkRecord
}

// NewRouterLSA creates an LSA with an empty record list. Both
// linkStateID and advertisingRouter are always the originating
// router's identity.
func NewRouterLSA(status SPFStatus, linkStateID, advertisingRouter netip.Addr) *RouterLSA {
	return &RouterLSA{
		linkStateID:       linkStateID,
		advertisingRouter: advertisingRouter,
		status:            status,
	}
}

func (l *RouterLSA) LinkStateID() netip.Addr {
	return l.linkStateID
}

func (l *RouterLSA) SetLinkStateID(addr netip.Addr) {
	l.linkStateID = addr
}

func (l *RouterLSA) AdvertisingRouter() netip.Addr {
	return l.advertisingRouter
}

func (l *RouterLSA) SetAdvertisingRouter(addr netip.Addr) {
	l.advertisingRouter = addr
}

func (l *RouterLSA) Status() SPFStatus {
	return l.status
}

func (l *RouterLSA) SetStatus(status SPFStatus) {
	l.status = status
}

// AddLinkRecord appends lr and returns the new record count. Insertion
// order is preserved and duplicates are allowed.
func (l *RouterLSA) AddLinkRecord(lr LinkRecord) int {
	l.records = append(l.records, lr)
	return len(l.records)
}

func (l *RouterLSA) NLinkRecords() int {
	return len(l.records)
}

// LinkRecord returns the nth record, or false if n is out of range.
func (l *RouterLSA) LinkRecord(n int) (LinkRecord, bool) {
	if n < 0 || n >= len(l.records) {
		return LinkRecord{}, false
	}

	return l.records[n], true
}

// LinkRecords returns a copy of the record list.
func (l *RouterLSA) LinkRecords() []LinkRecord {
	records := make([]LinkRecord, len(l.records))
	copy(records, l.records)
	return records
}

// ClearLinkRecords empties the record list.
func (l *RouterLSA) ClearLinkRecords() {
	l.records = nil
}

// CopyLinkRecordsFrom appends deep copies of src's records to l. It's
// a concatenation, not a replacement; call ClearLinkRecords first if
// replacement is what you want.
func (l *RouterLSA) CopyLinkRecordsFrom(src *RouterLSA) {
	l.records = append(l.records, src.records...)
}

func (l *RouterLSA) IsEmpty() bool {
	return len(l.records) == 0
}

// Copy returns a deep clone of the LSA. There's deliberately no
// implicit sharing anywhere: the clone's record list is its own.
func (l *RouterLSA) Copy() *RouterLSA {
	c := &RouterLSA{
		linkStateID:       l.linkStateID,
		advertisingRouter: l.advertisingRouter,
		status:            l.status,
	}
	c.records = make([]LinkRecord, len(l.records))
	copy(c.records, l.records)

	return c
}

// String is a verbose dump of the LSA for diagnostics.
func (l *RouterLSA) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "LSA %s adv %s status %s\n", l.linkStateID, l.advertisingRouter, l.status)
	for i, lr := range l.records {
		fmt.Fprintf(&sb, "  link %d: %s\n", i, lr)
	}

	return sb.String()
}
