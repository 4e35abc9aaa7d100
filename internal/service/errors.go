package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/profitshare/internal/calculator"
	"github.com/mmynk/profitshare/internal/ledger"
	"github.com/mmynk/profitshare/internal/storage"
)

// connectError maps ledger and storage errors to Connect status codes.
func connectError(err error) *connect.Error {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, storage.ErrHasPayments):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, calculator.ErrNoActiveStakeholders):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, storage.ErrTransient):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
