package ipcalc

import "errors"

// Error kinds returned by the engine. Every failure wraps exactly one of
// these sentinels, so callers can classify with errors.Is.
var (
	ErrFormat             = errors.New("malformed address or network")
	ErrInvalidMask        = errors.New("invalid subnet mask")
	ErrInvalidPrefix      = errors.New("invalid prefix length")
	ErrInvalidSubnetCount = errors.New("invalid subnet count")
	ErrPrefixOverflow     = errors.New("subnetting exceeds 32 bits")
	ErrInvalidHostCount   = errors.New("invalid host count")
	ErrCapacity           = errors.New("host count exceeds IPv4 capacity")
	ErrInsufficientInput  = errors.New("at least two networks are required")
	ErrNoCommonSupernet   = errors.New("no common supernet")
)
