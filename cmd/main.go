package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subnetlab/subnetcalc/internal/ipcalc"
	"github.com/subnetlab/subnetcalc/internal/logger"
	"github.com/subnetlab/subnetcalc/internal/render"
	"github.com/subnetlab/subnetcalc/internal/shell"
)

var (
	logLevel    string
	subnetCount int
	newPrefix   int
	baseAddr    string
	version     = "dev" // set at build time via -ldflags
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "subnetcalc",
		Short:   "IPv4 subnetting practice tool",
		Long:    `Calculate network information, divide networks into equal subnets, size a subnet for a host count and aggregate networks into the smallest covering supernet.`,
		Version: version,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	infoCmd := &cobra.Command{
		Use:   "info <network>",
		Short: "Calculate network information",
		Long:  `Shows network address, broadcast address, masks, host range and class for a network given as CIDR (192.168.1.0/24) or address plus mask (192.168.1.0 255.255.255.0).`,
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runInfo,
	}

	subnetCmd := &cobra.Command{
		Use:   "subnet <network>",
		Short: "Divide a network into smaller subnets",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runSubnet,
	}
	subnetCmd.Flags().IntVarP(&subnetCount, "count", "n", 0, "Number of subnets to create (must be a power of 2)")
	subnetCmd.Flags().IntVarP(&newPrefix, "prefix", "p", 0, "New prefix length for the subnets")
	subnetCmd.MarkFlagsMutuallyExclusive("count", "prefix")
	subnetCmd.MarkFlagsOneRequired("count", "prefix")

	hostsCmd := &cobra.Command{
		Use:   "hosts <count>",
		Short: "Find the subnet prefix that accommodates a host count",
		Args:  cobra.ExactArgs(1),
		RunE:  runHosts,
	}
	hostsCmd.Flags().StringVarP(&baseAddr, "base", "b", "", "Base network address to apply the calculated mask to")

	supernetCmd := &cobra.Command{
		Use:   "supernet <network>...",
		Short: "Find the smallest supernet containing all given networks",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runSupernet,
	}

	interactiveCmd := &cobra.Command{
		Use:   "interactive",
		Short: "Enter interactive mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(logLevel)
			return shell.New(log, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}

	rootCmd.AddCommand(infoCmd, subnetCmd, hostsCmd, supernetCmd, interactiveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	n, err := ipcalc.ParseNetwork(strings.Join(args, " "))
	if err != nil {
		return err
	}
	d, err := n.Describe()
	if err != nil {
		return err
	}
	return render.NetworkInfo(cmd.OutOrStdout(), d)
}

func runSubnet(cmd *cobra.Command, args []string) error {
	n, err := ipcalc.ParseNetwork(strings.Join(args, " "))
	if err != nil {
		return err
	}

	var subnets []ipcalc.Descriptor
	if cmd.Flags().Changed("count") {
		subnets, err = ipcalc.SplitByCount(n, subnetCount)
	} else {
		subnets, err = ipcalc.SplitByPrefix(n, newPrefix)
	}
	if err != nil {
		return err
	}
	return render.SubnetTable(cmd.OutOrStdout(), subnets)
}

func runHosts(cmd *cobra.Command, args []string) error {
	hosts, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("host count must be a number, got %q", args[0])
	}
	prefix, err := ipcalc.PrefixForHosts(hosts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := render.HostPlan(out, hosts, prefix); err != nil {
		return err
	}
	if baseAddr == "" {
		return nil
	}

	d, err := ipcalc.NetworkForHosts(baseAddr, hosts)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	return render.NetworkInfo(out, d)
}

func runSupernet(cmd *cobra.Command, args []string) error {
	networks := make([]ipcalc.Network, 0, len(args))
	for _, arg := range args {
		n, err := ipcalc.ParseNetwork(arg)
		if err != nil {
			return err
		}
		networks = append(networks, n)
	}

	d, err := ipcalc.Aggregate(networks)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Supernet that contains all provided networks: %s\n\n", d.CIDR)
	return render.NetworkInfo(out, d)
}
