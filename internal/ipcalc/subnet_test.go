package ipcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitByCountFour(t *testing.T) {
	subnets, err := SplitByCount(mustNetwork(t, "192.168.1.0/24"), 4)
	require.NoError(t, err)
	require.Len(t, subnets, 4)

	wantBases := []string{"192.168.1.0", "192.168.1.64", "192.168.1.128", "192.168.1.192"}
	for i, d := range subnets {
		assert.Equal(t, wantBases[i], d.NetworkAddr.String())
		assert.Equal(t, 26, d.Prefix)
		assert.Equal(t, uint64(62), d.Hosts)
	}
}

func TestSplitByCountOne(t *testing.T) {
	subnets, err := SplitByCount(mustNetwork(t, "10.0.0.0/8"), 1)
	require.NoError(t, err)
	require.Len(t, subnets, 1)
	assert.Equal(t, "10.0.0.0/8", subnets[0].CIDR)
}

func TestSplitByCountRejectsNonPowerOfTwo(t *testing.T) {
	for _, count := range []int{0, -2, 3, 6, 100} {
		_, err := SplitByCount(mustNetwork(t, "10.0.0.0/24"), count)
		require.ErrorIs(t, err, ErrInvalidSubnetCount, count)
	}
}

func TestSplitByCountOverflow(t *testing.T) {
	_, err := SplitByCount(mustNetwork(t, "10.0.0.0/30"), 8)
	require.ErrorIs(t, err, ErrPrefixOverflow)
}

func TestSplitByPrefix(t *testing.T) {
	subnets, err := SplitByPrefix(mustNetwork(t, "10.0.0.0/24"), 26)
	require.NoError(t, err)
	require.Len(t, subnets, 4)
	assert.Equal(t, "10.0.0.192/26", subnets[3].CIDR)
}

func TestSplitByPrefixNormalizesParent(t *testing.T) {
	subnets, err := SplitByPrefix(mustNetwork(t, "10.0.0.77/24"), 25)
	require.NoError(t, err)
	require.Len(t, subnets, 2)
	assert.Equal(t, "10.0.0.0/25", subnets[0].CIDR)
	assert.Equal(t, "10.0.0.128/25", subnets[1].CIDR)
}

func TestSplitByPrefixMustGrow(t *testing.T) {
	_, err := SplitByPrefix(mustNetwork(t, "10.0.0.0/24"), 24)
	require.ErrorIs(t, err, ErrInvalidPrefix)

	_, err = SplitByPrefix(mustNetwork(t, "10.0.0.0/24"), 16)
	require.ErrorIs(t, err, ErrInvalidPrefix)

	_, err = SplitByPrefix(mustNetwork(t, "10.0.0.0/24"), 33)
	require.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestSplitRefusesHugeEnumeration(t *testing.T) {
	_, err := SplitByPrefix(mustNetwork(t, "0.0.0.0/0"), 32)
	require.ErrorIs(t, err, ErrPrefixOverflow)

	_, err = SplitByCount(mustNetwork(t, "0.0.0.0/0"), 1<<20)
	require.ErrorIs(t, err, ErrPrefixOverflow)
}

func TestSplitPartitionLaw(t *testing.T) {
	parent, err := mustNetwork(t, "172.16.4.0/22").Describe()
	require.NoError(t, err)

	subnets, err := SplitByCount(mustNetwork(t, "172.16.4.0/22"), 16)
	require.NoError(t, err)
	require.Len(t, subnets, 16)

	// Covers the parent exactly, in ascending order, without gaps or
	// overlaps.
	assert.Equal(t, parent.NetworkAddr, subnets[0].NetworkAddr)
	assert.Equal(t, parent.BroadcastAddr, subnets[len(subnets)-1].BroadcastAddr)
	for i := 1; i < len(subnets); i++ {
		assert.Equal(t, subnets[i-1].BroadcastAddr+1, subnets[i].NetworkAddr)
	}
}
