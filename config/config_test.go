package config

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const lineConfig = `
nodes:
  r1: {}
  r2: {}
  r3:
    stubs:
      - subnet: 10.9.0.0/24
        cost: 1
links:
  - endpoints: [r1, r2]
    network: 10.0.0.0/30
    cost: 1
  - endpoints: [r2, r3]
    network: 10.0.0.4/30
    cost: 2
`

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig(lineConfig)
	require.NoError(t, err)

	require.Len(t, c.Nodes, 3)
	require.Len(t, c.Links, 2)

	require.Equal(t, []string{"r2", "r3"}, c.Links[1].Endpoints)
	require.Equal(t, uint32(2), c.Links[1].Cost)

	require.Len(t, c.Nodes["r3"].Stubs, 1)
	require.Equal(t, "10.9.0.0/24", c.Nodes["r3"].Stubs[0].Subnet)
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no nodes",
			in:   "links: []",
			want: "no nodes",
		},
		{
			name: "bad yaml",
			in:   "nodes: [",
			want: "parsing topology",
		},
		{
			name: "one endpoint",
			in: `
nodes:
  r1: {}
links:
  - endpoints: [r1]
`,
			want: "exactly 2 endpoints",
		},
		{
			name: "self link",
			in: `
nodes:
  r1: {}
links:
  - endpoints: [r1, r1]
`,
			want: "distinct",
		},
		{
			name: "unknown endpoint",
			in: `
nodes:
  r1: {}
links:
  - endpoints: [r1, r9]
`,
			want: `unknown node "r9"`,
		},
		{
			name: "network too small",
			in: `
nodes:
  r1: {}
  r2: {}
links:
  - endpoints: [r1, r2]
    network: 10.0.0.0/31
`,
			want: "no room",
		},
		{
			name: "overlapping link networks",
			in: `
nodes:
  r1: {}
  r2: {}
  r3: {}
links:
  - endpoints: [r1, r2]
    network: 10.0.0.0/24
  - endpoints: [r2, r3]
    network: 10.0.0.128/30
`,
			want: "overlaps",
		},
		{
			name: "stub overlaps link network",
			in: `
nodes:
  r1:
    stubs:
      - subnet: 10.0.0.0/16
  r2: {}
links:
  - endpoints: [r1, r2]
    network: 10.0.1.0/30
`,
			want: "overlaps",
		},
		{
			name: "bad stub subnet",
			in: `
nodes:
  r1:
    stubs:
      - subnet: not-a-subnet
`,
			want: "stub subnet",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig(tc.in)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestBuildTopology(t *testing.T) {
	c, err := ParseConfig(lineConfig)
	require.NoError(t, err)

	topo, err := c.BuildTopology()
	require.NoError(t, err)

	// sorted name order fixes node indexes
	nodes := topo.Nodes()
	require.Len(t, nodes, 3)
	require.Equal(t, "r1", nodes[0].Name())
	require.Equal(t, "r2", nodes[1].Name())
	require.Equal(t, "r3", nodes[2].Name())

	r1 := nodes[0]
	r2 := nodes[1]
	r3 := nodes[2]

	ifc, ok := r1.Interface(0)
	require.True(t, ok)
	require.Equal(t, netip.MustParseAddr("10.0.0.1"), ifc.Addr())
	require.Equal(t, uint32(1), ifc.Cost())

	// r2 is on both links, in link order
	require.Len(t, r2.Interfaces(), 2)
	ifc, _ = r2.Interface(0)
	require.Equal(t, netip.MustParseAddr("10.0.0.2"), ifc.Addr())
	ifc, _ = r2.Interface(1)
	require.Equal(t, netip.MustParseAddr("10.0.0.5"), ifc.Addr())
	require.Equal(t, uint32(2), ifc.Cost())

	stubs := r3.StubNetworks()
	require.Len(t, stubs, 1)
	require.Equal(t, netip.MustParsePrefix("10.9.0.0/24"), stubs[0].Prefix)
}

func TestBuildTopologyAutoAllocatesNetworks(t *testing.T) {
	c, err := ParseConfig(`
nodes:
  r1: {}
  r2: {}
  r3: {}
links:
  - endpoints: [r1, r2]
  - endpoints: [r2, r3]
`)
	require.NoError(t, err)

	topo, err := c.BuildTopology()
	require.NoError(t, err)

	r1, _ := topo.Node("r1")
	r3, _ := topo.Node("r3")

	ifc, ok := r1.Interface(0)
	require.True(t, ok)
	require.Equal(t, netip.MustParseAddr("10.255.0.1"), ifc.Addr())
	require.Equal(t, netip.MustParsePrefix("10.255.0.0/30"), ifc.Prefix())

	ifc, ok = r3.Interface(0)
	require.True(t, ok)
	require.Equal(t, netip.MustParseAddr("10.255.0.6"), ifc.Addr())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topology.yaml")
	require.NoError(t, os.WriteFile(path, []byte(lineConfig), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, c.Nodes, 3)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
