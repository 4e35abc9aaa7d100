package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/profitshare/internal/ledger"
	"github.com/mmynk/profitshare/internal/middleware"
	"github.com/mmynk/profitshare/internal/wire"
	"github.com/mmynk/profitshare/pkg/api"
	"github.com/mmynk/profitshare/pkg/api/apiconnect"
)

// PaymentService implements the Connect PaymentService
type PaymentService struct {
	ledger *ledger.Ledger
}

var _ apiconnect.PaymentServiceHandler = (*PaymentService)(nil)

func NewPaymentService(l *ledger.Ledger) *PaymentService {
	return &PaymentService{ledger: l}
}

func (s *PaymentService) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	slog.Info("ListPayments request received")

	payments, err := s.ledger.ListPayments(ctx)
	if err != nil {
		slog.Error("ListPayments failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("ListPayments successful", "count", len(payments))
	return connect.NewResponse(&api.ListPaymentsResponse{
		Payments: wire.PaymentDetails(payments),
	}), nil
}

func (s *PaymentService) GetPayment(ctx context.Context, req *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error) {
	slog.Info("GetPayment request received", "payment_id", req.Msg.ID)

	payment, err := s.ledger.GetPayment(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("GetPayment failed", "payment_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetPaymentResponse{
		Payment: wire.PaymentDetail(*payment),
	}), nil
}

// RecordPayment appends a payment. The caller fetches a new summary to see
// its effect.
func (s *PaymentService) RecordPayment(ctx context.Context, req *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("RecordPayment request received",
		"stakeholder_id", req.Msg.StakeholderID,
		"amount", req.Msg.Amount.String(),
		"month", req.Msg.Month,
		"global", req.Msg.IsGlobalPayment,
		"user_id", userID,
		"email", middleware.GetEmail(ctx),
	)

	payment, err := wire.NewPayment(s.ledger, req.Msg, userID)
	if err == nil {
		err = s.ledger.RecordPayment(ctx, payment)
	}
	if err != nil {
		slog.Error("RecordPayment failed", "stakeholder_id", req.Msg.StakeholderID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Payment recorded", "payment_id", payment.ID, "month", payment.Month)
	return connect.NewResponse(&api.RecordPaymentResponse{
		Payment: wire.Payment(*payment),
	}), nil
}

func (s *PaymentService) UpdatePayment(ctx context.Context, req *connect.Request[api.UpdatePaymentRequest]) (*connect.Response[api.UpdatePaymentResponse], error) {
	slog.Info("UpdatePayment request received", "payment_id", req.Msg.ID)

	upd, err := wire.PaymentUpdate(s.ledger, req.Msg)
	if err != nil {
		slog.Error("UpdatePayment failed", "payment_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}
	payment, err := s.ledger.UpdatePayment(ctx, req.Msg.ID, upd)
	if err != nil {
		slog.Error("UpdatePayment failed", "payment_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Payment updated", "payment_id", payment.ID)
	return connect.NewResponse(&api.UpdatePaymentResponse{
		Payment: wire.Payment(*payment),
	}), nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, req *connect.Request[api.DeletePaymentRequest]) (*connect.Response[api.DeletePaymentResponse], error) {
	slog.Info("DeletePayment request received", "payment_id", req.Msg.ID)

	if err := s.ledger.DeletePayment(ctx, req.Msg.ID); err != nil {
		slog.Error("DeletePayment failed", "payment_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Payment deleted", "payment_id", req.Msg.ID)
	return connect.NewResponse(&api.DeletePaymentResponse{Success: true}), nil
}
