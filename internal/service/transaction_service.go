package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/profitshare/internal/ledger"
	"github.com/mmynk/profitshare/internal/wire"
	"github.com/mmynk/profitshare/pkg/api"
	"github.com/mmynk/profitshare/pkg/api/apiconnect"
)

// TransactionService implements the Connect TransactionService
type TransactionService struct {
	ledger *ledger.Ledger
}

var _ apiconnect.TransactionServiceHandler = (*TransactionService)(nil)

func NewTransactionService(l *ledger.Ledger) *TransactionService {
	return &TransactionService{ledger: l}
}

func (s *TransactionService) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	slog.Info("ListTransactions request received")

	txs, err := s.ledger.ListTransactions(ctx)
	if err != nil {
		slog.Error("ListTransactions failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("ListTransactions successful", "count", len(txs))
	return connect.NewResponse(&api.ListTransactionsResponse{
		Transactions: wire.Transactions(txs),
	}), nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, req *connect.Request[api.GetTransactionRequest]) (*connect.Response[api.GetTransactionResponse], error) {
	slog.Info("GetTransaction request received", "transaction_id", req.Msg.ID)

	tx, err := s.ledger.GetTransaction(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("GetTransaction failed", "transaction_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetTransactionResponse{
		Transaction: wire.Transaction(*tx),
	}), nil
}

// CreateTransaction records a profit or cost.
func (s *TransactionService) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	slog.Info("CreateTransaction request received",
		"type", req.Msg.Type,
		"amount", req.Msg.Amount.String(),
		"date", req.Msg.Date,
	)

	tx, err := wire.NewTransaction(s.ledger, req.Msg)
	if err == nil {
		err = s.ledger.CreateTransaction(ctx, tx)
	}
	if err != nil {
		slog.Error("CreateTransaction failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Transaction created", "transaction_id", tx.ID)
	return connect.NewResponse(&api.CreateTransactionResponse{
		Transaction: wire.Transaction(*tx),
	}), nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, req *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error) {
	slog.Info("UpdateTransaction request received", "transaction_id", req.Msg.ID)

	upd, err := wire.TransactionUpdate(s.ledger, req.Msg)
	if err != nil {
		slog.Error("UpdateTransaction failed", "transaction_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}
	tx, err := s.ledger.UpdateTransaction(ctx, req.Msg.ID, upd)
	if err != nil {
		slog.Error("UpdateTransaction failed", "transaction_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Transaction updated", "transaction_id", tx.ID)
	return connect.NewResponse(&api.UpdateTransactionResponse{
		Transaction: wire.Transaction(*tx),
	}), nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	slog.Info("DeleteTransaction request received", "transaction_id", req.Msg.ID)

	if err := s.ledger.DeleteTransaction(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteTransaction failed", "transaction_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Transaction deleted", "transaction_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteTransactionResponse{Success: true}), nil
}
