// Package render formats engine results into the documented tabular text
// layouts. The CLI and the interactive shell both go through this package,
// so there is a single formatting path for every front-end.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	lo "github.com/samber/lo"

	"github.com/subnetlab/subnetcalc/internal/ipcalc"
)

// NetworkInfo writes the banner-framed key/value table for a descriptor.
// Field order is a display contract and must not change.
func NetworkInfo(w io.Writer, d ipcalc.Descriptor) error {
	rows := descriptorRows(d)

	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}
	width += 25

	rule := strings.Repeat("=", width)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, center("Network Information", width))
	fmt.Fprintln(w, rule)

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t: %s\n", row[0], row[1])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, rule)
	return nil
}

// SubnetTable writes one aligned row per subnet, in the order given.
func SubnetTable(w io.Writer, subnets []ipcalc.Descriptor) error {
	if len(subnets) == 0 {
		fmt.Fprintln(w, "No subnets to display.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBNET\tNETWORK ADDRESS\tBROADCAST\tMASK\tRANGE\tHOSTS")

	lines := lo.Map(subnets, func(d ipcalc.Descriptor, _ int) string {
		return fmt.Sprintf("%s\t%s\t%s\t%s\t%s - %s\t%d",
			d.CIDR, d.NetworkAddr, d.BroadcastAddr, d.Mask, d.FirstHost, d.LastHost, d.Hosts)
	})
	for _, line := range lines {
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}

// HostPlan summarizes a host-count sizing result.
func HostPlan(w io.Writer, hosts, prefix int) error {
	mask, err := ipcalc.MaskFromPrefix(prefix)
	if err != nil {
		return err
	}
	capacity := uint64(1)<<(32-prefix) - 2
	fmt.Fprintf(w, "For %d hosts you need a /%d subnet (netmask %s)\n", hosts, prefix, mask)
	fmt.Fprintf(w, "This subnet can accommodate %d hosts\n", capacity)
	return nil
}

func descriptorRows(d ipcalc.Descriptor) [][2]string {
	return [][2]string{
		{"Network Address", d.NetworkAddr.String()},
		{"Broadcast Address", d.BroadcastAddr.String()},
		{"Subnet Mask", d.Mask.String()},
		{"Wildcard Mask", d.Wildcard.String()},
		{"Prefix Length", strconv.Itoa(d.Prefix)},
		{"Network Class", d.Class},
		{"Number of Hosts", strconv.FormatUint(d.Hosts, 10)},
		{"IP Range", fmt.Sprintf("%s - %s", d.FirstHost, d.LastHost)},
		{"CIDR Notation", d.CIDR},
	}
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
