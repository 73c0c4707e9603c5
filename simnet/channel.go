package simnet

import (
	"fmt"
	"time"
)

// DefaultLinkCost is the interface output cost used when a link is
// created without an explicit one.
const DefaultLinkCost = 1

// A Channel is a point-to-point transmission medium. The contract is
// exactly two attached interfaces; attachment itself doesn't enforce
// that so that a malformed topology can be built and then rejected by
// whoever walks it.
//
// Delay and data rate are carried as channel attributes for the
// transmission engine. The routing core never reads them; path costs
// come from interface costs.
type Channel struct {
	id       int
	name     string
	delay    time.Duration
	dataRate uint64 // bits per second

	interfaces []*Interface
}

func (t *Topology) newChannel(name string) *Channel {
	ch := &Channel{
		id:   len(t.channels),
		name: name,
	}

	t.channels = append(t.channels, ch)

	return ch
}

func (ch *Channel) ID() int {
	return ch.id
}

func (ch *Channel) Name() string {
	return ch.name
}

func (ch *Channel) Delay() time.Duration {
	return ch.delay
}

func (ch *Channel) SetDelay(d time.Duration) {
	ch.delay = d
}

func (ch *Channel) DataRate() uint64 {
	return ch.dataRate
}

func (ch *Channel) SetDataRate(bps uint64) {
	ch.dataRate = bps
}

func (ch *Channel) attach(ifc *Interface) {
	ch.interfaces = append(ch.interfaces, ifc)
}

func (ch *Channel) NInterfaces() int {
	return len(ch.interfaces)
}

func (ch *Channel) Interface(i int) (*Interface, bool) {
	if i < 0 || i >= len(ch.interfaces) {
		return nil, false
	}

	return ch.interfaces[i], true
}

func (ch *Channel) String() string {
	return fmt.Sprintf("channel %d (%s)", ch.id, ch.name)
}
