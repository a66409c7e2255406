package xtrace

import (
	"math/bits"
	"strconv"
	"sync"
)

// Channel tags a message with the subsystem it belongs to. Each channel is a
// single bit so the filter can hold any union of channels and test membership
// by intersection. A log call always passes exactly one channel; multi-bit
// values are only meaningful as filter sets.
type Channel uint64

const (
	ChannelFileIO Channel = 1 << iota
	ChannelNetwork
	ChannelRendering
	ChannelUI

	// ChannelTemp is reserved for ad-hoc, local-only messages that should
	// never ship enabled. Grep for it before release.
	ChannelTemp
)

// ChannelAll matches every channel, including bits registered later.
const ChannelAll = ^Channel(0)

// ChannelNone disables all channels (the override level may still let
// sufficiently severe messages through).
const ChannelNone = Channel(0)

// Has reports whether every bit of member is present in the set c.
func (c Channel) Has(member Channel) bool { return c&member == member }

// Index returns the bit index of the lowest set bit, or -1 for zero.
func (c Channel) Index() int {
	if c == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(c))
}

var (
	channelNamesMu sync.RWMutex
	channelNames   = map[Channel]string{
		ChannelFileIO:    "fileIO",
		ChannelNetwork:   "network",
		ChannelRendering: "rendering",
		ChannelUI:        "ui",
		ChannelTemp:      "temp",
	}
)

// RegisterChannelName attaches a display name to a channel bit so rendered
// lines show [name] instead of the positional [ch<N>] tag. Safe for
// concurrent use; later registrations replace earlier ones.
func RegisterChannelName(c Channel, name string) {
	channelNamesMu.Lock()
	channelNames[c] = name
	channelNamesMu.Unlock()
}

// String returns the registered name of the channel, or "ch<N>" where N is
// the index of its lowest set bit.
func (c Channel) String() string {
	channelNamesMu.RLock()
	name, ok := channelNames[c]
	channelNamesMu.RUnlock()
	if ok {
		return name
	}
	if c == 0 {
		return "ch?"
	}
	return "ch" + strconv.Itoa(c.Index())
}
