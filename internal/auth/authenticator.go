// Package auth authenticates the operators who are allowed to change the
// ledger and issues their session tokens.
package auth

import (
	"context"

	"github.com/mmynk/profitshare/internal/models"
)

// Authenticator verifies operator credentials. The service layer depends on
// this interface only, so the password implementation can be replaced.
type Authenticator interface {
	// Register creates an operator account. The credential format depends on
	// the implementation.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the operator for valid credentials and
	// ErrInvalidCredentials otherwise.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks a credential before it is stored.
	ValidateCredential(credential string) error
}
