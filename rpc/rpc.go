//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative rpc.proto

package rpc

import (
	context "context"
	"net/netip"

	"github.com/netsim-go/netsim/routing"
	"github.com/netsim-go/netsim/simnet"
)

// APIService is what the daemon exposes over the control socket,
// expressed in domain types. The grpc plumbing below converts to and
// from the wire messages.
type APIService interface {
	GetVersion(ctx context.Context) (string, error)
	GetDatabase(ctx context.Context) ([]*routing.RouterLSA, error)
	GetRoutes(ctx context.Context, node string) ([]simnet.Route, error)
	Shutdown(ctx context.Context) error
}

type Server struct {
	UnimplementedAPIServer
	apiService APIService
}

func NewAPIServer(apiService APIService) *Server {
	return &Server{
		apiService: apiService,
	}
}

func (s *Server) GetVersion(ctx context.Context, req *GetVersionRequest) (*GetVersionResponse, error) {
	version, err := s.apiService.GetVersion(ctx)
	if err != nil {
		return nil, err
	}

	return &GetVersionResponse{
		Version: version,
	}, nil
}

func (s *Server) GetDatabase(ctx context.Context, req *GetDatabaseRequest) (*GetDatabaseResponse, error) {
	lsas, err := s.apiService.GetDatabase(ctx)
	if err != nil {
		return nil, err
	}

	resp := &GetDatabaseResponse{
		Lsas: make([]*LSA, len(lsas)),
	}

	for i, lsa := range lsas {
		resp.Lsas[i] = LSAToProto(lsa)
	}

	return resp, nil
}

func (s *Server) GetRoutes(ctx context.Context, req *GetRoutesRequest) (*GetRoutesResponse, error) {
	routes, err := s.apiService.GetRoutes(ctx, req.Node)
	if err != nil {
		return nil, err
	}

	resp := &GetRoutesResponse{
		Routes: make([]*Route, len(routes)),
	}

	for i, r := range routes {
		resp.Routes[i] = &Route{
			Destination: r.Destination.String(),
			Mask:        r.Mask.String(),
			NextHop:     r.NextHop.String(),
			Interface:   int32(r.Interface),
			Metric:      r.Metric,
		}
	}

	return resp, nil
}

func (s *Server) Shutdown(ctx context.Context, req *ShutdownRequest) (*ShutdownResponse, error) {
	err := s.apiService.Shutdown(ctx)
	if err != nil {
		return nil, err
	}

	return &ShutdownResponse{}, nil
}

func LSAToProto(lsa *routing.RouterLSA) *LSA {
	p := &LSA{
		LinkStateId:       lsa.LinkStateID().String(),
		AdvertisingRouter: lsa.AdvertisingRouter().String(),
		Links:             make([]*LinkRecord, lsa.NLinkRecords()),
	}

	for i := 0; i < lsa.NLinkRecords(); i++ {
		lr, _ := lsa.LinkRecord(i)
		p.Links[i] = &LinkRecord{
			Type:     uint32(lr.Type()),
			LinkId:   lr.LinkID().String(),
			LinkData: lr.LinkData().String(),
			Metric:   lr.Metric(),
		}
	}

	return p
}

func LSAFromProto(p *LSA) (*routing.RouterLSA, error) {
	id, err := netip.ParseAddr(p.LinkStateId)
	if err != nil {
		return nil, err
	}

	advRtr, err := netip.ParseAddr(p.AdvertisingRouter)
	if err != nil {
		return nil, err
	}

	lsa := routing.NewRouterLSA(routing.SPFNotExplored, id, advRtr)

	for _, link := range p.Links {
		linkID, err := netip.ParseAddr(link.LinkId)
		if err != nil {
			return nil, err
		}

		linkData, err := netip.ParseAddr(link.LinkData)
		if err != nil {
			return nil, err
		}

		lsa.AddLinkRecord(routing.NewLinkRecord(routing.LinkType(link.Type), linkID, linkData, link.Metric))
	}

	return lsa, nil
}

func RouteFromProto(p *Route) (simnet.Route, error) {
	dst, err := netip.ParseAddr(p.Destination)
	if err != nil {
		return simnet.Route{}, err
	}

	mask, err := netip.ParseAddr(p.Mask)
	if err != nil {
		return simnet.Route{}, err
	}

	nextHop, err := netip.ParseAddr(p.NextHop)
	if err != nil {
		return simnet.Route{}, err
	}

	return simnet.Route{
		Destination: dst,
		Mask:        mask,
		NextHop:     nextHop,
		Interface:   int(p.Interface),
		Metric:      p.Metric,
	}, nil
}
