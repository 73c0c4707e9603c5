// Package api exposes the simulator's routing state over a unix
// socket, for the netsimc CLI.
package api

import (
	"context"
	"fmt"
	"net"

	"github.com/netsim-go/netsim/routing"
	"github.com/netsim-go/netsim/rpc"
	"github.com/netsim-go/netsim/simnet"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

type Server struct {
	manager  *routing.Manager
	topo     *simnet.Topology
	shutdown context.CancelFunc
	socket   string
	version  string
}

func NewServer(manager *routing.Manager, topo *simnet.Topology, socket string, shutdown context.CancelFunc, version string) *Server {
	return &Server{
		manager:  manager,
		topo:     topo,
		shutdown: shutdown,
		socket:   socket,
		version:  version,
	}
}

func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("unix", s.socket)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	rpcServer := rpc.NewAPIServer(s)

	rpc.RegisterAPIServer(grpcServer, rpcServer)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return grpcServer.Serve(listener)
	})

	g.Go(func() error {
		<-ctx.Done()
		grpcServer.GracefulStop()
		return nil
	})

	return g.Wait()
}

func (s *Server) GetVersion(ctx context.Context) (string, error) {
	return s.version, nil
}

func (s *Server) GetDatabase(ctx context.Context) ([]*routing.RouterLSA, error) {
	db := s.manager.Database()

	ids := db.RouterIDs()
	lsas := make([]*routing.RouterLSA, 0, len(ids))

	for _, id := range ids {
		lsa, err := db.Lookup(id)
		if err != nil {
			return nil, err
		}

		lsas = append(lsas, lsa.Copy())
	}

	return lsas, nil
}

func (s *Server) GetRoutes(ctx context.Context, name string) ([]simnet.Route, error) {
	node, ok := s.topo.Node(name)
	if !ok {
		return nil, fmt.Errorf("unknown node %q", name)
	}

	return node.Routes().Routes(), nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdown()
	return nil
}
