package ipcalc

import (
	"fmt"
	"strconv"
)

// Network is an address paired with a prefix length. The address may be any
// host inside the network; every derivation masks it down first.
type Network struct {
	Addr   Address
	Prefix int
}

// String returns the network in CIDR notation without normalizing the
// address.
func (n Network) String() string {
	return n.Addr.String() + "/" + strconv.Itoa(n.Prefix)
}

// Descriptor is the fully derived, read-only view of a Network.
type Descriptor struct {
	NetworkAddr   Address
	BroadcastAddr Address
	Mask          Address
	Wildcard      Address
	Prefix        int
	Class         string
	Hosts         uint64
	FirstHost     Address
	LastHost      Address
	CIDR          string
}

// Describe derives every network property of n. The usable-host policy
// follows the classic convention for prefixes up to /30 (network and
// broadcast reserved) and the /31 point-to-point and /32 host-route
// conventions, which reserve nothing.
func (n Network) Describe() (Descriptor, error) {
	mask, err := MaskFromPrefix(n.Prefix)
	if err != nil {
		return Descriptor{}, err
	}

	network := n.Addr & mask
	wildcard := ^mask
	broadcast := network | wildcard

	d := Descriptor{
		NetworkAddr:   network,
		BroadcastAddr: broadcast,
		Mask:          mask,
		Wildcard:      wildcard,
		Prefix:        n.Prefix,
		Class:         addressClass(n.Addr),
		CIDR:          fmt.Sprintf("%s/%d", network, n.Prefix),
	}

	if n.Prefix >= 31 {
		d.Hosts = uint64(1) << (32 - n.Prefix)
		d.FirstHost = network
		d.LastHost = broadcast
	} else {
		d.Hosts = uint64(1)<<(32-n.Prefix) - 2
		d.FirstHost = network + 1
		d.LastHost = broadcast - 1
	}
	return d, nil
}

// addressClass labels the classful range of the first octet. The label is
// informational only; no other computation keys off it.
func addressClass(a Address) string {
	switch first := a >> 24; {
	case first < 128:
		return "A"
	case first < 192:
		return "B"
	case first < 224:
		return "C"
	case first < 240:
		return "D (Multicast)"
	default:
		return "E (Reserved)"
	}
}
