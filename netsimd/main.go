// netsimd loads a topology description, runs the link-state routing
// core over it, and serves the results on a control socket for
// netsimc.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/netsim-go/netsim/api"
	"github.com/netsim-go/netsim/config"
	"github.com/netsim-go/netsim/routing"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var version = "0.1.0"

var (
	topologyPath string
	socketPath   string
	parallel     bool
	verbose      bool
)

func main() {
	flag.StringVar(&topologyPath, "topology", "topology.yaml", "path to the topology description")
	flag.StringVar(&socketPath, "socket", "/tmp/netsimd.sock", "path to the control socket")
	flag.BoolVar(&parallel, "parallel", false, "run per-root SPF computations concurrently")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")

	flag.Parse()

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.WithField("version", version).Info("starting netsimd")

	c, err := config.LoadConfig(topologyPath)
	if err != nil {
		logrus.WithError(err).Fatal("loading topology")
	}

	topo, err := c.BuildTopology()
	if err != nil {
		logrus.WithError(err).Fatal("building topology")
	}

	manager := routing.NewManager(topo)
	manager.SetParallel(parallel)
	manager.EnableRoutingAll()

	if err := manager.BuildRoutingDatabase(); err != nil {
		// Nodes that discovered cleanly are still in the database;
		// keep going with what we have.
		logrus.WithError(err).Warn("partial discovery failure")
	}

	if err := manager.InitializeRoutes(); err != nil {
		logrus.WithError(err).Warn("partial route initialization failure")
	}

	for _, n := range topo.Nodes() {
		logrus.WithFields(logrus.Fields{
			"node":   n.Name(),
			"routes": n.Routes().Len(),
		}).Info("forwarding table installed")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	server := api.NewServer(manager, topo, socketPath, cancel, version)

	g.Go(func() error {
		return server.Run(ctx)
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Fatal("netsimd exited")
	}
}
