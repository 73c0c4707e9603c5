package simnet

import (
	"encoding/binary"
	"fmt"
	"net"
	"net/netip"
	"sync"
)

// Router identities are allocated process-wide, one per routing agent,
// starting at 0.0.0.1 and incrementing. They're stable for an agent's
// lifetime and never reused within a run.
var routerIDMu sync.Mutex
var nextRouterID uint32 = 1

func AllocateRouterID() netip.Addr {
	routerIDMu.Lock()
	defer routerIDMu.Unlock()

	id := addrFromUint32(nextRouterID)
	nextRouterID++

	return id
}

// ResetRouterIDs rewinds the allocator to 0.0.0.1. Only for tests and
// back-to-back in-process simulations; identities allocated before the
// reset must no longer be in use.
func ResetRouterIDs() {
	routerIDMu.Lock()
	defer routerIDMu.Unlock()

	nextRouterID = 1
}

func addrFromUint32(u uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], u)
	return netip.AddrFrom4(b)
}

// MaskOf returns the netmask of a prefix as a dotted-quad address,
// e.g. 255.255.255.0 for a /24.
func MaskOf(prefix netip.Prefix) netip.Addr {
	mask := net.CIDRMask(prefix.Bits(), prefix.Addr().BitLen())
	return mustAddrFromSlice(mask)
}

// HostMask is the /32 mask used for host routes.
var HostMask = netip.MustParseAddr("255.255.255.255")

func mustAddrFromSlice(b []byte) netip.Addr {
	addr, ok := netip.AddrFromSlice(b)
	if !ok {
		panic("mustAddrFromSlice: slice should be either 4 or 16 bytes, but got " + fmt.Sprint(len(b)))
	}
	return addr
}
