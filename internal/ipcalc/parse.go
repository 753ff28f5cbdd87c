package ipcalc

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNetwork parses a network specification in either "A.B.C.D/P" (CIDR)
// or "A.B.C.D M.M.M.M" (address plus dotted mask) form. The address does not
// have to be the network address; it is normalized when the network is
// described.
func ParseNetwork(s string) (Network, error) {
	s = strings.TrimSpace(s)

	if addrText, prefixText, ok := strings.Cut(s, "/"); ok {
		addr, err := ParseAddress(addrText)
		if err != nil {
			return Network{}, err
		}
		prefix, err := strconv.Atoi(strings.TrimSpace(prefixText))
		if err != nil {
			return Network{}, fmt.Errorf("%w: bad prefix length %q", ErrFormat, prefixText)
		}
		if prefix < 0 || prefix > 32 {
			return Network{}, fmt.Errorf("%w: /%d is outside [0,32]", ErrInvalidPrefix, prefix)
		}
		return Network{Addr: addr, Prefix: prefix}, nil
	}

	if fields := strings.Fields(s); len(fields) == 2 {
		addr, err := ParseAddress(fields[0])
		if err != nil {
			return Network{}, err
		}
		mask, err := ParseAddress(fields[1])
		if err != nil {
			return Network{}, err
		}
		prefix, err := PrefixFromMask(mask)
		if err != nil {
			return Network{}, err
		}
		return Network{Addr: addr, Prefix: prefix}, nil
	}

	return Network{}, fmt.Errorf("%w: %q is neither CIDR nor address+mask", ErrFormat, s)
}
