package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subnetlab/subnetcalc/internal/ipcalc"
)

func describe(t *testing.T, s string) ipcalc.Descriptor {
	t.Helper()
	n, err := ipcalc.ParseNetwork(s)
	require.NoError(t, err)
	d, err := n.Describe()
	require.NoError(t, err)
	return d
}

func TestNetworkInfoFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NetworkInfo(&buf, describe(t, "192.168.1.0/24")))
	out := buf.String()

	fields := []string{
		"Network Address",
		"Broadcast Address",
		"Subnet Mask",
		"Wildcard Mask",
		"Prefix Length",
		"Network Class",
		"Number of Hosts",
		"IP Range",
		"CIDR Notation",
	}
	last := -1
	for _, field := range fields {
		idx := strings.Index(out, field)
		require.GreaterOrEqual(t, idx, 0, field)
		assert.Greater(t, idx, last, "%s out of order", field)
		last = idx
	}
}

func TestNetworkInfoValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NetworkInfo(&buf, describe(t, "192.168.1.0/24")))
	out := buf.String()

	assert.Contains(t, out, "Network Information")
	assert.Contains(t, out, "192.168.1.255")
	assert.Contains(t, out, "255.255.255.0")
	assert.Contains(t, out, "0.0.0.255")
	assert.Contains(t, out, "254")
	assert.Contains(t, out, "192.168.1.1 - 192.168.1.254")
	assert.Contains(t, out, "192.168.1.0/24")
}

func TestSubnetTable(t *testing.T) {
	subnets, err := ipcalc.SplitByCount(ipcalc.Network{Addr: 0xC0A80100, Prefix: 24}, 4)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, SubnetTable(&buf, subnets))
	out := buf.String()

	assert.Contains(t, out, "SUBNET")
	assert.Contains(t, out, "192.168.1.0/26")
	assert.Contains(t, out, "192.168.1.64/26")
	assert.Contains(t, out, "192.168.1.128/26")
	assert.Contains(t, out, "192.168.1.192/26")
	assert.Equal(t, 5, strings.Count(strings.TrimRight(out, "\n"), "\n")+1, "header plus four rows")
}

func TestSubnetTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SubnetTable(&buf, nil))
	assert.Contains(t, buf.String(), "No subnets to display.")
}

func TestHostPlan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HostPlan(&buf, 100, 25))
	out := buf.String()

	assert.Contains(t, out, "/25")
	assert.Contains(t, out, "255.255.255.128")
	assert.Contains(t, out, "126 hosts")
}
