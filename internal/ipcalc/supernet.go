package ipcalc

import (
	"fmt"

	lo "github.com/samber/lo"
)

// Aggregate computes the smallest single network whose address range
// contains every input network. The result's network address is the lowest
// input network address masked down to the chosen prefix, so it need not
// equal any input's network address.
func Aggregate(networks []Network) (Descriptor, error) {
	if len(networks) < 2 {
		return Descriptor{}, fmt.Errorf("%w: got %d", ErrInsufficientInput, len(networks))
	}

	ranges := make([]Descriptor, 0, len(networks))
	for _, n := range networks {
		d, err := n.Describe()
		if err != nil {
			return Descriptor{}, err
		}
		ranges = append(ranges, d)
	}

	low := lo.MinBy(ranges, func(a, b Descriptor) bool { return a.NetworkAddr < b.NetworkAddr }).NetworkAddr
	high := lo.MaxBy(ranges, func(a, b Descriptor) bool { return a.BroadcastAddr > b.BroadcastAddr }).BroadcastAddr
	shortest := lo.MinBy(ranges, func(a, b Descriptor) bool { return a.Prefix < b.Prefix }).Prefix

	// Widen from the shortest input prefix until the span [low, high] fits.
	for prefix := shortest; prefix >= 0; prefix-- {
		d, err := (Network{Addr: low, Prefix: prefix}).Describe()
		if err != nil {
			return Descriptor{}, err
		}
		if d.BroadcastAddr >= high {
			return d, nil
		}
	}

	// A /0 spans all of IPv4, so reaching this point means the scan itself
	// is broken.
	return Descriptor{}, ErrNoCommonSupernet
}
