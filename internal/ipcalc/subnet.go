package ipcalc

import (
	"fmt"
	"math/bits"
)

// maxSplitBits caps a single split at 2^16 subnets. Anything larger (all
// /32s of a /0 would be 4 billion entries) is refused before allocation.
const maxSplitBits = 16

// SplitByCount divides n into count equal subnets. count must be a power of
// two no smaller than 1.
func SplitByCount(n Network, count int) ([]Descriptor, error) {
	if count < 1 || count&(count-1) != 0 {
		return nil, fmt.Errorf("%w: %d is not a power of two", ErrInvalidSubnetCount, count)
	}

	bitsNeeded := bits.TrailingZeros(uint(count))
	newPrefix := n.Prefix + bitsNeeded
	if newPrefix > 32 {
		return nil, fmt.Errorf("%w: %d subnets of a /%d would need a /%d",
			ErrPrefixOverflow, count, n.Prefix, newPrefix)
	}
	return split(n, newPrefix)
}

// SplitByPrefix divides n into subnets of the given prefix length, which
// must be strictly longer than the original.
func SplitByPrefix(n Network, newPrefix int) ([]Descriptor, error) {
	if newPrefix > 32 {
		return nil, fmt.Errorf("%w: /%d is outside [0,32]", ErrInvalidPrefix, newPrefix)
	}
	if newPrefix <= n.Prefix {
		return nil, fmt.Errorf("%w: /%d must be longer than /%d", ErrInvalidPrefix, newPrefix, n.Prefix)
	}
	return split(n, newPrefix)
}

// split enumerates the subnets of n at newPrefix in ascending address
// order. The result partitions the parent range exactly: contiguous,
// non-overlapping, covering every address once.
func split(n Network, newPrefix int) ([]Descriptor, error) {
	parent, err := n.Describe()
	if err != nil {
		return nil, err
	}

	splitBits := newPrefix - n.Prefix
	if splitBits > maxSplitBits {
		return nil, fmt.Errorf("%w: splitting a /%d into /%d subnets would enumerate 2^%d networks",
			ErrPrefixOverflow, n.Prefix, newPrefix, splitBits)
	}

	size := uint32(1) << (32 - newPrefix)
	count := 1 << splitBits

	subnets := make([]Descriptor, 0, count)
	for i := 0; i < count; i++ {
		child := Network{
			Addr:   parent.NetworkAddr + Address(uint32(i)*size),
			Prefix: newPrefix,
		}
		d, err := child.Describe()
		if err != nil {
			return nil, err
		}
		subnets = append(subnets, d)
	}
	return subnets, nil
}
