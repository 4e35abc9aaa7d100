package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/profitshare/pkg/api"
)

// SummaryServiceName is the fully-qualified name of the SummaryService service.
const SummaryServiceName = "profitshare.v1.SummaryService"

const (
	SummaryServiceGetSummaryProcedure = "/profitshare.v1.SummaryService/GetSummary"
)

// SummaryServiceHandler is implemented by the server side of the service.
// SummaryService computes the financial summary.
type SummaryServiceHandler interface {
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
}

// NewSummaryServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSummaryServiceHandler(svc SummaryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	s := newService()
	s.handle(SummaryServiceGetSummaryProcedure, connect.NewUnaryHandler(SummaryServiceGetSummaryProcedure, svc.GetSummary, opts...))
	return "/" + SummaryServiceName + "/", s.mux
}

// SummaryServiceClient is a client for the SummaryService service.
type SummaryServiceClient interface {
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
}

// NewSummaryServiceClient constructs a client for the SummaryService service. baseURL is the
// server's root, for example http://localhost:8080.
func NewSummaryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SummaryServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &summaryServiceClient{
		getSummary: connect.NewClient[api.GetSummaryRequest, api.GetSummaryResponse](httpClient, baseURL+SummaryServiceGetSummaryProcedure, opts...),
	}
}

type summaryServiceClient struct {
	getSummary *connect.Client[api.GetSummaryRequest, api.GetSummaryResponse]
}

func (c *summaryServiceClient) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}
