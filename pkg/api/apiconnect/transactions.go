package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/profitshare/pkg/api"
)

// TransactionServiceName is the fully-qualified name of the TransactionService service.
const TransactionServiceName = "profitshare.v1.TransactionService"

const (
	TransactionServiceListTransactionsProcedure  = "/profitshare.v1.TransactionService/ListTransactions"
	TransactionServiceGetTransactionProcedure    = "/profitshare.v1.TransactionService/GetTransaction"
	TransactionServiceCreateTransactionProcedure = "/profitshare.v1.TransactionService/CreateTransaction"
	TransactionServiceUpdateTransactionProcedure = "/profitshare.v1.TransactionService/UpdateTransaction"
	TransactionServiceDeleteTransactionProcedure = "/profitshare.v1.TransactionService/DeleteTransaction"
)

// TransactionServiceHandler is implemented by the server side of the service.
// TransactionService manages profit and cost transactions.
type TransactionServiceHandler interface {
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	GetTransaction(context.Context, *connect.Request[api.GetTransactionRequest]) (*connect.Response[api.GetTransactionResponse], error)
	CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error)
	UpdateTransaction(context.Context, *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error)
	DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error)
}

// NewTransactionServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTransactionServiceHandler(svc TransactionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	s := newService()
	s.handle(TransactionServiceListTransactionsProcedure, connect.NewUnaryHandler(TransactionServiceListTransactionsProcedure, svc.ListTransactions, opts...))
	s.handle(TransactionServiceGetTransactionProcedure, connect.NewUnaryHandler(TransactionServiceGetTransactionProcedure, svc.GetTransaction, opts...))
	s.handle(TransactionServiceCreateTransactionProcedure, connect.NewUnaryHandler(TransactionServiceCreateTransactionProcedure, svc.CreateTransaction, opts...))
	s.handle(TransactionServiceUpdateTransactionProcedure, connect.NewUnaryHandler(TransactionServiceUpdateTransactionProcedure, svc.UpdateTransaction, opts...))
	s.handle(TransactionServiceDeleteTransactionProcedure, connect.NewUnaryHandler(TransactionServiceDeleteTransactionProcedure, svc.DeleteTransaction, opts...))
	return "/" + TransactionServiceName + "/", s.mux
}

// TransactionServiceClient is a client for the TransactionService service.
type TransactionServiceClient interface {
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	GetTransaction(context.Context, *connect.Request[api.GetTransactionRequest]) (*connect.Response[api.GetTransactionResponse], error)
	CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error)
	UpdateTransaction(context.Context, *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error)
	DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error)
}

// NewTransactionServiceClient constructs a client for the TransactionService service. baseURL is the
// server's root, for example http://localhost:8080.
func NewTransactionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TransactionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &transactionServiceClient{
		listTransactions:  connect.NewClient[api.ListTransactionsRequest, api.ListTransactionsResponse](httpClient, baseURL+TransactionServiceListTransactionsProcedure, opts...),
		getTransaction:    connect.NewClient[api.GetTransactionRequest, api.GetTransactionResponse](httpClient, baseURL+TransactionServiceGetTransactionProcedure, opts...),
		createTransaction: connect.NewClient[api.CreateTransactionRequest, api.CreateTransactionResponse](httpClient, baseURL+TransactionServiceCreateTransactionProcedure, opts...),
		updateTransaction: connect.NewClient[api.UpdateTransactionRequest, api.UpdateTransactionResponse](httpClient, baseURL+TransactionServiceUpdateTransactionProcedure, opts...),
		deleteTransaction: connect.NewClient[api.DeleteTransactionRequest, api.DeleteTransactionResponse](httpClient, baseURL+TransactionServiceDeleteTransactionProcedure, opts...),
	}
}

type transactionServiceClient struct {
	listTransactions  *connect.Client[api.ListTransactionsRequest, api.ListTransactionsResponse]
	getTransaction    *connect.Client[api.GetTransactionRequest, api.GetTransactionResponse]
	createTransaction *connect.Client[api.CreateTransactionRequest, api.CreateTransactionResponse]
	updateTransaction *connect.Client[api.UpdateTransactionRequest, api.UpdateTransactionResponse]
	deleteTransaction *connect.Client[api.DeleteTransactionRequest, api.DeleteTransactionResponse]
}

func (c *transactionServiceClient) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *transactionServiceClient) GetTransaction(ctx context.Context, req *connect.Request[api.GetTransactionRequest]) (*connect.Response[api.GetTransactionResponse], error) {
	return c.getTransaction.CallUnary(ctx, req)
}

func (c *transactionServiceClient) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	return c.createTransaction.CallUnary(ctx, req)
}

func (c *transactionServiceClient) UpdateTransaction(ctx context.Context, req *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error) {
	return c.updateTransaction.CallUnary(ctx, req)
}

func (c *transactionServiceClient) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	return c.deleteTransaction.CallUnary(ctx, req)
}
