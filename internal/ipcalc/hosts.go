package ipcalc

import (
	"fmt"
	"math/bits"
)

// PrefixForHosts returns the longest prefix whose network accommodates the
// requested number of usable hosts. Two addresses are always reserved for
// the network and broadcast identities, so the smallest answer for a single
// host is /30.
func PrefixForHosts(hosts int) (int, error) {
	if hosts <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHostCount, hosts)
	}

	// ceil(log2(hosts + 2)) host bits.
	hostBits := bits.Len64(uint64(hosts) + 1)
	if hostBits > 32 {
		return 0, fmt.Errorf("%w: %d hosts do not fit in an IPv4 network", ErrCapacity, hosts)
	}
	return 32 - hostBits, nil
}

// NetworkForHosts anchors the prefix computed for hosts at a base address
// and returns the resulting network's descriptor.
func NetworkForHosts(base string, hosts int) (Descriptor, error) {
	prefix, err := PrefixForHosts(hosts)
	if err != nil {
		return Descriptor{}, err
	}
	addr, err := ParseAddress(base)
	if err != nil {
		return Descriptor{}, err
	}
	return Network{Addr: addr, Prefix: prefix}.Describe()
}
