// Package shell implements the interactive menu mode. All remembered state
// (the last network a user sized, for instance) lives in the shell session;
// the engine itself is stateless.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/subnetlab/subnetcalc/internal/ipcalc"
	"github.com/subnetlab/subnetcalc/internal/render"
)

// Shell runs the interactive menu loop.
type Shell struct {
	logger zerolog.Logger
	in     *bufio.Scanner
	out    io.Writer
}

// New creates a shell reading from in and writing to out.
func New(logger zerolog.Logger, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		logger: logger,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run loops over the menu until the user exits or input ends.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "============================================")
	fmt.Fprintln(s.out, "   IP Subnetting Practice Tool")
	fmt.Fprintln(s.out, "============================================")
	fmt.Fprintln(s.out)

	for {
		s.printMenu()
		choice, ok := s.prompt("Enter your choice (1-5): ")
		if !ok {
			return s.in.Err()
		}

		switch choice {
		case "1":
			s.runInfo()
		case "2":
			s.runSubnet()
		case "3":
			s.runHosts()
		case "4":
			s.runSupernet()
		case "5":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter a number between 1 and 5.")
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "Available operations:")
	fmt.Fprintln(s.out, "1. Calculate Network Information")
	fmt.Fprintln(s.out, "2. Divide Network into Subnets")
	fmt.Fprintln(s.out, "3. Find Subnet for Host Count")
	fmt.Fprintln(s.out, "4. Find Supernet")
	fmt.Fprintln(s.out, "5. Exit")
}

// prompt reads one trimmed line. ok is false once input is exhausted.
func (s *Shell) prompt(question string) (string, bool) {
	fmt.Fprint(s.out, question)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) fail(err error) {
	s.logger.Debug().Err(err).Msg("Operation failed")
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

func (s *Shell) runInfo() {
	text, ok := s.prompt("Enter network (e.g. 192.168.1.0/24 or 192.168.1.0 255.255.255.0): ")
	if !ok {
		return
	}
	n, err := ipcalc.ParseNetwork(text)
	if err != nil {
		s.fail(err)
		return
	}
	d, err := n.Describe()
	if err != nil {
		s.fail(err)
		return
	}
	render.NetworkInfo(s.out, d)
}

func (s *Shell) runSubnet() {
	text, ok := s.prompt("Enter network (e.g. 192.168.1.0/24): ")
	if !ok {
		return
	}
	n, err := ipcalc.ParseNetwork(text)
	if err != nil {
		s.fail(err)
		return
	}

	mode, ok := s.prompt("Divide by (n)umber of subnets or (p)refix length? (n/p): ")
	if !ok {
		return
	}

	var subnets []ipcalc.Descriptor
	switch strings.ToLower(mode) {
	case "n":
		count, ok := s.promptInt("Enter number of subnets (must be a power of 2): ")
		if !ok {
			return
		}
		subnets, err = ipcalc.SplitByCount(n, count)
	case "p":
		prefix, ok := s.promptInt("Enter new prefix length: ")
		if !ok {
			return
		}
		subnets, err = ipcalc.SplitByPrefix(n, prefix)
	default:
		fmt.Fprintln(s.out, "Invalid choice. Please enter 'n' or 'p'.")
		return
	}
	if err != nil {
		s.fail(err)
		return
	}
	render.SubnetTable(s.out, subnets)
}

func (s *Shell) runHosts() {
	hosts, ok := s.promptInt("Enter number of hosts required: ")
	if !ok {
		return
	}
	prefix, err := ipcalc.PrefixForHosts(hosts)
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintln(s.out)
	render.HostPlan(s.out, hosts, prefix)

	apply, ok := s.prompt("Apply this mask to a specific network? (y/n): ")
	if !ok || strings.ToLower(apply) != "y" {
		return
	}
	base, ok := s.prompt("Enter base network IP (e.g. 192.168.1.0): ")
	if !ok {
		return
	}
	d, err := ipcalc.NetworkForHosts(base, hosts)
	if err != nil {
		s.fail(err)
		return
	}
	render.NetworkInfo(s.out, d)
}

func (s *Shell) runSupernet() {
	text, ok := s.prompt("Enter two or more networks separated by spaces: ")
	if !ok {
		return
	}

	var networks []ipcalc.Network
	for _, field := range strings.Fields(text) {
		n, err := ipcalc.ParseNetwork(field)
		if err != nil {
			s.fail(err)
			return
		}
		networks = append(networks, n)
	}

	d, err := ipcalc.Aggregate(networks)
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "\nSupernet that contains all provided networks: %s\n\n", d.CIDR)
	render.NetworkInfo(s.out, d)
}

func (s *Shell) promptInt(question string) (int, bool) {
	text, ok := s.prompt(question)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		s.fail(fmt.Errorf("%q is not a number", text))
		return 0, false
	}
	return n, true
}
