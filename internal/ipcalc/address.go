// Package ipcalc implements IPv4 address and subnet arithmetic: parsing,
// network property derivation, equal-subnet partitioning, host-count sizing
// and supernet aggregation. All operations are pure functions over 32-bit
// values; nothing in the package carries state between calls.
package ipcalc

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Address is an IPv4 address as a 32-bit unsigned integer, most significant
// octet first.
type Address uint32

// ParseAddress converts dotted-decimal text to an Address. The input must
// have exactly four octets, each a decimal number in [0,255].
func ParseAddress(s string) (Address, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("%w: %q is not a dotted-quad address", ErrFormat, s)
	}

	var addr uint32
	for _, part := range parts {
		octet, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: bad octet %q in %q", ErrFormat, part, s)
		}
		addr = addr<<8 | uint32(octet)
	}
	return Address(addr), nil
}

// String formats the address as four dot-separated decimal octets.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}

// MaskFromPrefix builds the subnet mask with prefix leading one-bits.
func MaskFromPrefix(prefix int) (Address, error) {
	if prefix < 0 || prefix > 32 {
		return 0, fmt.Errorf("%w: /%d is outside [0,32]", ErrInvalidPrefix, prefix)
	}
	// Keep the all-zero boundary explicit rather than leaning on 32-bit
	// shift semantics.
	if prefix == 0 {
		return 0, nil
	}
	return Address(^uint32(0) << (32 - prefix)), nil
}

// PrefixFromMask counts the leading one-bits of mask. Masks whose bits are
// not contiguous ones-then-zeros (e.g. 255.0.255.0) are rejected.
func PrefixFromMask(mask Address) (int, error) {
	prefix := bits.LeadingZeros32(^uint32(mask))
	if expect, _ := MaskFromPrefix(prefix); expect != mask {
		return 0, fmt.Errorf("%w: %s has non-contiguous bits", ErrInvalidMask, mask)
	}
	return prefix, nil
}
