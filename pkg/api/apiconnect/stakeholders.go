package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/profitshare/pkg/api"
)

// StakeholderServiceName is the fully-qualified name of the StakeholderService service.
const StakeholderServiceName = "profitshare.v1.StakeholderService"

const (
	StakeholderServiceListStakeholdersProcedure  = "/profitshare.v1.StakeholderService/ListStakeholders"
	StakeholderServiceGetStakeholderProcedure    = "/profitshare.v1.StakeholderService/GetStakeholder"
	StakeholderServiceCreateStakeholderProcedure = "/profitshare.v1.StakeholderService/CreateStakeholder"
	StakeholderServiceUpdateStakeholderProcedure = "/profitshare.v1.StakeholderService/UpdateStakeholder"
	StakeholderServiceDeleteStakeholderProcedure = "/profitshare.v1.StakeholderService/DeleteStakeholder"
)

// StakeholderServiceHandler is implemented by the server side of the service.
// StakeholderService manages the parties that share the profit.
type StakeholderServiceHandler interface {
	ListStakeholders(context.Context, *connect.Request[api.ListStakeholdersRequest]) (*connect.Response[api.ListStakeholdersResponse], error)
	GetStakeholder(context.Context, *connect.Request[api.GetStakeholderRequest]) (*connect.Response[api.GetStakeholderResponse], error)
	CreateStakeholder(context.Context, *connect.Request[api.CreateStakeholderRequest]) (*connect.Response[api.CreateStakeholderResponse], error)
	UpdateStakeholder(context.Context, *connect.Request[api.UpdateStakeholderRequest]) (*connect.Response[api.UpdateStakeholderResponse], error)
	DeleteStakeholder(context.Context, *connect.Request[api.DeleteStakeholderRequest]) (*connect.Response[api.DeleteStakeholderResponse], error)
}

// NewStakeholderServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewStakeholderServiceHandler(svc StakeholderServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	s := newService()
	s.handle(StakeholderServiceListStakeholdersProcedure, connect.NewUnaryHandler(StakeholderServiceListStakeholdersProcedure, svc.ListStakeholders, opts...))
	s.handle(StakeholderServiceGetStakeholderProcedure, connect.NewUnaryHandler(StakeholderServiceGetStakeholderProcedure, svc.GetStakeholder, opts...))
	s.handle(StakeholderServiceCreateStakeholderProcedure, connect.NewUnaryHandler(StakeholderServiceCreateStakeholderProcedure, svc.CreateStakeholder, opts...))
	s.handle(StakeholderServiceUpdateStakeholderProcedure, connect.NewUnaryHandler(StakeholderServiceUpdateStakeholderProcedure, svc.UpdateStakeholder, opts...))
	s.handle(StakeholderServiceDeleteStakeholderProcedure, connect.NewUnaryHandler(StakeholderServiceDeleteStakeholderProcedure, svc.DeleteStakeholder, opts...))
	return "/" + StakeholderServiceName + "/", s.mux
}

// StakeholderServiceClient is a client for the StakeholderService service.
type StakeholderServiceClient interface {
	ListStakeholders(context.Context, *connect.Request[api.ListStakeholdersRequest]) (*connect.Response[api.ListStakeholdersResponse], error)
	GetStakeholder(context.Context, *connect.Request[api.GetStakeholderRequest]) (*connect.Response[api.GetStakeholderResponse], error)
	CreateStakeholder(context.Context, *connect.Request[api.CreateStakeholderRequest]) (*connect.Response[api.CreateStakeholderResponse], error)
	UpdateStakeholder(context.Context, *connect.Request[api.UpdateStakeholderRequest]) (*connect.Response[api.UpdateStakeholderResponse], error)
	DeleteStakeholder(context.Context, *connect.Request[api.DeleteStakeholderRequest]) (*connect.Response[api.DeleteStakeholderResponse], error)
}

// NewStakeholderServiceClient constructs a client for the StakeholderService service. baseURL is the
// server's root, for example http://localhost:8080.
func NewStakeholderServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) StakeholderServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &stakeholderServiceClient{
		listStakeholders:  connect.NewClient[api.ListStakeholdersRequest, api.ListStakeholdersResponse](httpClient, baseURL+StakeholderServiceListStakeholdersProcedure, opts...),
		getStakeholder:    connect.NewClient[api.GetStakeholderRequest, api.GetStakeholderResponse](httpClient, baseURL+StakeholderServiceGetStakeholderProcedure, opts...),
		createStakeholder: connect.NewClient[api.CreateStakeholderRequest, api.CreateStakeholderResponse](httpClient, baseURL+StakeholderServiceCreateStakeholderProcedure, opts...),
		updateStakeholder: connect.NewClient[api.UpdateStakeholderRequest, api.UpdateStakeholderResponse](httpClient, baseURL+StakeholderServiceUpdateStakeholderProcedure, opts...),
		deleteStakeholder: connect.NewClient[api.DeleteStakeholderRequest, api.DeleteStakeholderResponse](httpClient, baseURL+StakeholderServiceDeleteStakeholderProcedure, opts...),
	}
}

type stakeholderServiceClient struct {
	listStakeholders  *connect.Client[api.ListStakeholdersRequest, api.ListStakeholdersResponse]
	getStakeholder    *connect.Client[api.GetStakeholderRequest, api.GetStakeholderResponse]
	createStakeholder *connect.Client[api.CreateStakeholderRequest, api.CreateStakeholderResponse]
	updateStakeholder *connect.Client[api.UpdateStakeholderRequest, api.UpdateStakeholderResponse]
	deleteStakeholder *connect.Client[api.DeleteStakeholderRequest, api.DeleteStakeholderResponse]
}

func (c *stakeholderServiceClient) ListStakeholders(ctx context.Context, req *connect.Request[api.ListStakeholdersRequest]) (*connect.Response[api.ListStakeholdersResponse], error) {
	return c.listStakeholders.CallUnary(ctx, req)
}

func (c *stakeholderServiceClient) GetStakeholder(ctx context.Context, req *connect.Request[api.GetStakeholderRequest]) (*connect.Response[api.GetStakeholderResponse], error) {
	return c.getStakeholder.CallUnary(ctx, req)
}

func (c *stakeholderServiceClient) CreateStakeholder(ctx context.Context, req *connect.Request[api.CreateStakeholderRequest]) (*connect.Response[api.CreateStakeholderResponse], error) {
	return c.createStakeholder.CallUnary(ctx, req)
}

func (c *stakeholderServiceClient) UpdateStakeholder(ctx context.Context, req *connect.Request[api.UpdateStakeholderRequest]) (*connect.Response[api.UpdateStakeholderResponse], error) {
	return c.updateStakeholder.CallUnary(ctx, req)
}

func (c *stakeholderServiceClient) DeleteStakeholder(ctx context.Context, req *connect.Request[api.DeleteStakeholderRequest]) (*connect.Response[api.DeleteStakeholderResponse], error) {
	return c.deleteStakeholder.CallUnary(ctx, req)
}
