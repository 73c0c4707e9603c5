// Package config loads YAML topology descriptions and builds the
// in-memory topology the simulator runs over.
package config

import (
	"fmt"
	"net/netip"
	"os"

	"github.com/netsim-go/netsim/simnet"
	"go4.org/netipx"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Config is a parsed topology description:
//
//	nodes:
//	  r1:
//	    stubs:
//	      - subnet: 10.1.1.0/24
//	        cost: 0
//	links:
//	  - endpoints: [r1, r2]
//	    network: 10.0.0.0/30 # optional, auto-allocated if omitted
//	    cost: 1
type Config struct {
	Nodes map[string]NodeConfig `yaml:"nodes"`
	Links []LinkConfig          `yaml:"links"`
}

type NodeConfig struct {
	Stubs []StubConfig `yaml:"stubs"`
}

type StubConfig struct {
	Subnet string `yaml:"subnet"`
	Cost   uint32 `yaml:"cost"`
}

type LinkConfig struct {
	Endpoints []string `yaml:"endpoints"`
	Network   string   `yaml:"network"`
	Cost      uint32   `yaml:"cost"`
}

func LoadConfig(path string) (*Config, error) {
	s, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(string(s))
}

func ParseConfig(s string) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal([]byte(s), &c); err != nil {
		return nil, fmt.Errorf("parsing topology: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) validate() error {
	if len(c.Nodes) == 0 {
		return fmt.Errorf("topology has no nodes")
	}

	// Every configured subnet must be disjoint, or two nodes would
	// advertise overlapping address space.
	var b netipx.IPSetBuilder
	used, err := b.IPSet()
	if err != nil {
		return err
	}

	claim := func(section string, prefix netip.Prefix) error {
		if used.OverlapsPrefix(prefix) {
			return fmt.Errorf("%s: %s overlaps an already configured subnet", section, prefix)
		}

		b.AddPrefix(prefix)
		used, err = b.IPSet()

		return err
	}

	names := make([]string, 0, len(c.Nodes))
	for name := range c.Nodes {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		for _, stub := range c.Nodes[name].Stubs {
			prefix, err := netip.ParsePrefix(stub.Subnet)
			if err != nil {
				return fmt.Errorf("node %s: stub subnet %q: %w", name, stub.Subnet, err)
			}

			if err := claim(fmt.Sprintf("node %s", name), prefix.Masked()); err != nil {
				return err
			}
		}
	}

	for i, link := range c.Links {
		if len(link.Endpoints) != 2 {
			return fmt.Errorf("link %d: needs exactly 2 endpoints, got %d", i, len(link.Endpoints))
		}

		if link.Endpoints[0] == link.Endpoints[1] {
			return fmt.Errorf("link %d: endpoints must be distinct", i)
		}

		for _, name := range link.Endpoints {
			if _, ok := c.Nodes[name]; !ok {
				return fmt.Errorf("link %d: unknown node %q", i, name)
			}
		}

		if link.Network == "" {
			continue
		}

		prefix, err := netip.ParsePrefix(link.Network)
		if err != nil {
			return fmt.Errorf("link %d: network %q: %w", i, link.Network, err)
		}

		if prefix.Bits() > 30 {
			return fmt.Errorf("link %d: network %s has no room for two endpoints", i, prefix)
		}

		if err := claim(fmt.Sprintf("link %d", i), prefix.Masked()); err != nil {
			return err
		}
	}

	return nil
}

// linkNetworkBase is where auto-allocated /30 link networks start.
var linkNetworkBase = netip.MustParseAddr("10.255.0.0")

// BuildTopology materializes the description. Nodes are created in
// sorted name order so that node indexes, and everything keyed on
// them, are reproducible.
func (c *Config) BuildTopology() (*simnet.Topology, error) {
	topo := simnet.NewTopology()

	names := make([]string, 0, len(c.Nodes))
	for name := range c.Nodes {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		node, err := topo.AddNode(name)
		if err != nil {
			return nil, err
		}

		for _, stub := range c.Nodes[name].Stubs {
			prefix, err := netip.ParsePrefix(stub.Subnet)
			if err != nil {
				return nil, fmt.Errorf("node %s: %w", name, err)
			}

			node.AddStubNetwork(prefix, stub.Cost)
		}
	}

	next := linkNetworkBase

	for i, link := range c.Links {
		a, _ := topo.Node(link.Endpoints[0])
		b, _ := topo.Node(link.Endpoints[1])

		var network netip.Prefix

		if link.Network != "" {
			prefix, err := netip.ParsePrefix(link.Network)
			if err != nil {
				return nil, fmt.Errorf("link %d: %w", i, err)
			}

			network = prefix.Masked()
		} else {
			network = netip.PrefixFrom(next, 30)
			for j := 0; j < 4; j++ {
				next = next.Next()
			}
		}

		if _, err := topo.AddLink(a, b, network, link.Cost); err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
	}

	return topo, nil
}
