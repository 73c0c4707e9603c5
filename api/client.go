package api

import (
	"context"
	"fmt"

	"github.com/netsim-go/netsim/routing"
	"github.com/netsim-go/netsim/rpc"
	"github.com/netsim-go/netsim/simnet"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Client struct {
	*grpc.ClientConn
	rpcClient rpc.APIClient
}

func NewClient(socketPath string) (*Client, error) {
	target := fmt.Sprintf("unix://%s", socketPath)
	conn, err := grpc.Dial(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	return &Client{
		ClientConn: conn,
		rpcClient:  rpc.NewAPIClient(conn),
	}, nil
}

func (c *Client) GetVersion(ctx context.Context) (string, error) {
	resp, err := c.rpcClient.GetVersion(ctx, &rpc.GetVersionRequest{})
	if err != nil {
		return "", err
	}

	return resp.Version, nil
}

func (c *Client) GetDatabase(ctx context.Context) ([]*routing.RouterLSA, error) {
	resp, err := c.rpcClient.GetDatabase(ctx, &rpc.GetDatabaseRequest{})
	if err != nil {
		return nil, err
	}

	lsas := make([]*routing.RouterLSA, len(resp.Lsas))
	for i, p := range resp.Lsas {
		lsas[i], err = rpc.LSAFromProto(p)
		if err != nil {
			return nil, err
		}
	}

	return lsas, nil
}

func (c *Client) GetRoutes(ctx context.Context, node string) ([]simnet.Route, error) {
	resp, err := c.rpcClient.GetRoutes(ctx, &rpc.GetRoutesRequest{Node: node})
	if err != nil {
		return nil, err
	}

	routes := make([]simnet.Route, len(resp.Routes))
	for i, p := range resp.Routes {
		routes[i], err = rpc.RouteFromProto(p)
		if err != nil {
			return nil, err
		}
	}

	return routes, nil
}

func (c *Client) Shutdown(ctx context.Context) error {
	_, err := c.rpcClient.Shutdown(ctx, &rpc.ShutdownRequest{})
	return err
}
