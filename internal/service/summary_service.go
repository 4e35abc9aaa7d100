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

// SummaryService implements the Connect SummaryService
type SummaryService struct {
	ledger *ledger.Ledger
}

var _ apiconnect.SummaryServiceHandler = (*SummaryService)(nil)

func NewSummaryService(l *ledger.Ledger) *SummaryService {
	return &SummaryService{ledger: l}
}

// GetSummary recomputes the financial summary from the current records,
// optionally restricted to a date range.
func (s *SummaryService) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	slog.Info("GetSummary request received",
		"start_date", req.Msg.StartDate,
		"end_date", req.Msg.EndDate,
	)

	r, err := s.ledger.ParseRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		slog.Error("GetSummary failed", "error", err)
		return nil, connectError(err)
	}

	summary, err := s.ledger.Summary(ctx, r)
	if err != nil {
		slog.Error("GetSummary failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("GetSummary successful",
		"months", len(summary.MonthlyCalculations),
		"total_balance", summary.TotalBalance.String(),
	)
	return connect.NewResponse(&api.GetSummaryResponse{
		Summary: wire.Summary(summary),
	}), nil
}
