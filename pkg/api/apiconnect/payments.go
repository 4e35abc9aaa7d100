package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/profitshare/pkg/api"
)

// PaymentServiceName is the fully-qualified name of the PaymentService service.
const PaymentServiceName = "profitshare.v1.PaymentService"

const (
	PaymentServiceListPaymentsProcedure  = "/profitshare.v1.PaymentService/ListPayments"
	PaymentServiceGetPaymentProcedure    = "/profitshare.v1.PaymentService/GetPayment"
	PaymentServiceRecordPaymentProcedure = "/profitshare.v1.PaymentService/RecordPayment"
	PaymentServiceUpdatePaymentProcedure = "/profitshare.v1.PaymentService/UpdatePayment"
	PaymentServiceDeletePaymentProcedure = "/profitshare.v1.PaymentService/DeletePayment"
)

// PaymentServiceHandler is implemented by the server side of the service.
// PaymentService records payouts to stakeholders.
type PaymentServiceHandler interface {
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
	GetPayment(context.Context, *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error)
	RecordPayment(context.Context, *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error)
	UpdatePayment(context.Context, *connect.Request[api.UpdatePaymentRequest]) (*connect.Response[api.UpdatePaymentResponse], error)
	DeletePayment(context.Context, *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error)
}

// NewPaymentServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewPaymentServiceHandler(svc PaymentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	s := newService()
	s.handle(PaymentServiceListPaymentsProcedure, connect.NewUnaryHandler(PaymentServiceListPaymentsProcedure, svc.ListPayments, opts...))
	s.handle(PaymentServiceGetPaymentProcedure, connect.NewUnaryHandler(PaymentServiceGetPaymentProcedure, svc.GetPayment, opts...))
	s.handle(PaymentServiceRecordPaymentProcedure, connect.NewUnaryHandler(PaymentServiceRecordPaymentProcedure, svc.RecordPayment, opts...))
	s.handle(PaymentServiceUpdatePaymentProcedure, connect.NewUnaryHandler(PaymentServiceUpdatePaymentProcedure, svc.UpdatePayment, opts...))
	s.handle(PaymentServiceDeletePaymentProcedure, connect.NewUnaryHandler(PaymentServiceDeletePaymentProcedure, svc.DeletePayment, opts...))
	return "/" + PaymentServiceName + "/", s.mux
}

// PaymentServiceClient is a client for the PaymentService service.
type PaymentServiceClient interface {
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
	GetPayment(context.Context, *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error)
	RecordPayment(context.Context, *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error)
	UpdatePayment(context.Context, *connect.Request[api.UpdatePaymentRequest]) (*connect.Response[api.UpdatePaymentResponse], error)
	DeletePayment(context.Context, *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error)
}

// NewPaymentServiceClient constructs a client for the PaymentService service. baseURL is the
// server's root, for example http://localhost:8080.
func NewPaymentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PaymentServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &paymentServiceClient{
		listPayments:  connect.NewClient[api.ListPaymentsRequest, api.ListPaymentsResponse](httpClient, baseURL+PaymentServiceListPaymentsProcedure, opts...),
		getPayment:    connect.NewClient[api.GetPaymentRequest, api.GetPaymentResponse](httpClient, baseURL+PaymentServiceGetPaymentProcedure, opts...),
		recordPayment: connect.NewClient[api.RecordPaymentRequest, api.RecordPaymentResponse](httpClient, baseURL+PaymentServiceRecordPaymentProcedure, opts...),
		updatePayment: connect.NewClient[api.UpdatePaymentRequest, api.UpdatePaymentResponse](httpClient, baseURL+PaymentServiceUpdatePaymentProcedure, opts...),
		deletePayment: connect.NewClient[api.DeletePaymentRequest, api.DeletePaymentResponse](httpClient, baseURL+PaymentServiceDeletePaymentProcedure, opts...),
	}
}

type paymentServiceClient struct {
	listPayments  *connect.Client[api.ListPaymentsRequest, api.ListPaymentsResponse]
	getPayment    *connect.Client[api.GetPaymentRequest, api.GetPaymentResponse]
	recordPayment *connect.Client[api.RecordPaymentRequest, api.RecordPaymentResponse]
	updatePayment *connect.Client[api.UpdatePaymentRequest, api.UpdatePaymentResponse]
	deletePayment *connect.Client[api.DeletePaymentRequest, api.DeletePaymentResponse]
}

func (c *paymentServiceClient) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}

func (c *paymentServiceClient) GetPayment(ctx context.Context, req *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error) {
	return c.getPayment.CallUnary(ctx, req)
}

func (c *paymentServiceClient) RecordPayment(ctx context.Context, req *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error) {
	return c.recordPayment.CallUnary(ctx, req)
}

func (c *paymentServiceClient) UpdatePayment(ctx context.Context, req *connect.Request[api.UpdatePaymentRequest]) (*connect.Response[api.UpdatePaymentResponse], error) {
	return c.updatePayment.CallUnary(ctx, req)
}

func (c *paymentServiceClient) DeletePayment(ctx context.Context, req *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error) {
	return c.deletePayment.CallUnary(ctx, req)
}
