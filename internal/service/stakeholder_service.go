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

// StakeholderService implements the Connect StakeholderService
type StakeholderService struct {
	ledger *ledger.Ledger
}

var _ apiconnect.StakeholderServiceHandler = (*StakeholderService)(nil)

func NewStakeholderService(l *ledger.Ledger) *StakeholderService {
	return &StakeholderService{ledger: l}
}

func (s *StakeholderService) ListStakeholders(ctx context.Context, req *connect.Request[api.ListStakeholdersRequest]) (*connect.Response[api.ListStakeholdersResponse], error) {
	slog.Info("ListStakeholders request received")

	stakeholders, err := s.ledger.ListStakeholders(ctx)
	if err != nil {
		slog.Error("ListStakeholders failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("ListStakeholders successful", "count", len(stakeholders))
	return connect.NewResponse(&api.ListStakeholdersResponse{
		Stakeholders: wire.Stakeholders(stakeholders),
	}), nil
}

// GetStakeholder returns a stakeholder with their payment history.
func (s *StakeholderService) GetStakeholder(ctx context.Context, req *connect.Request[api.GetStakeholderRequest]) (*connect.Response[api.GetStakeholderResponse], error) {
	slog.Info("GetStakeholder request received", "stakeholder_id", req.Msg.ID)

	detail, err := s.ledger.GetStakeholder(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("GetStakeholder failed", "stakeholder_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("GetStakeholder successful", "stakeholder_id", detail.ID, "payments_count", len(detail.Payments))
	return connect.NewResponse(&api.GetStakeholderResponse{
		Stakeholder: wire.Stakeholder(detail.Stakeholder),
		Payments:    wire.Payments(detail.Payments),
	}), nil
}

func (s *StakeholderService) CreateStakeholder(ctx context.Context, req *connect.Request[api.CreateStakeholderRequest]) (*connect.Response[api.CreateStakeholderResponse], error) {
	slog.Info("CreateStakeholder request received", "name", req.Msg.Name)

	sh := wire.NewStakeholder(req.Msg)
	if err := s.ledger.CreateStakeholder(ctx, sh); err != nil {
		slog.Error("CreateStakeholder failed", "name", req.Msg.Name, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Stakeholder created", "stakeholder_id", sh.ID)
	return connect.NewResponse(&api.CreateStakeholderResponse{
		Stakeholder: wire.Stakeholder(*sh),
	}), nil
}

// UpdateStakeholder renames or (de)activates a stakeholder.
func (s *StakeholderService) UpdateStakeholder(ctx context.Context, req *connect.Request[api.UpdateStakeholderRequest]) (*connect.Response[api.UpdateStakeholderResponse], error) {
	slog.Info("UpdateStakeholder request received", "stakeholder_id", req.Msg.ID)

	sh, err := s.ledger.UpdateStakeholder(ctx, req.Msg.ID, wire.StakeholderUpdate(req.Msg))
	if err != nil {
		slog.Error("UpdateStakeholder failed", "stakeholder_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Stakeholder updated", "stakeholder_id", sh.ID, "active", sh.Active)
	return connect.NewResponse(&api.UpdateStakeholderResponse{
		Stakeholder: wire.Stakeholder(*sh),
	}), nil
}

// DeleteStakeholder fails with FailedPrecondition while payments reference
// the stakeholder.
func (s *StakeholderService) DeleteStakeholder(ctx context.Context, req *connect.Request[api.DeleteStakeholderRequest]) (*connect.Response[api.DeleteStakeholderResponse], error) {
	slog.Info("DeleteStakeholder request received", "stakeholder_id", req.Msg.ID)

	if err := s.ledger.DeleteStakeholder(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteStakeholder failed", "stakeholder_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Stakeholder deleted", "stakeholder_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteStakeholderResponse{Success: true}), nil
}
