package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/profitshare/internal/models"
	"github.com/mmynk/profitshare/internal/storage"
)

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[string]*models.User)}
}

func (m *memoryUsers) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return fmt.Errorf("email %s: %w", user.Email, storage.ErrConflict)
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *memoryUsers) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memoryUsers) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, storage.ErrNotFound
}

func newTestAuthenticator() *PasswordAuthenticator {
	a := NewPasswordAuthenticator(newMemoryUsers())
	a.cost = bcrypt.MinCost
	return a
}

func TestPasswordAuthenticator(t *testing.T) {
	a := newTestAuthenticator()
	ctx := context.Background()

	user, err := a.Register(ctx, "  Ops@Example.com ", "Ops", "correct horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "ops@example.com" {
		t.Errorf("Email = %q, want normalized address", user.Email)
	}
	if user.PasswordHash == "correct horse" {
		t.Error("Password stored in plain text")
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid", "ops@example.com", "correct horse", nil},
		{"case-insensitive email", "OPS@example.com", "correct horse", nil},
		{"wrong password", "ops@example.com", "battery staple", ErrInvalidCredentials},
		{"unknown email", "nobody@example.com", "correct horse", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Authenticate(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Authenticate failed: %v", err)
			}
			if got.ID != user.ID {
				t.Errorf("Authenticated user %s, want %s", got.ID, user.ID)
			}
		})
	}
}

func TestPasswordAuthenticator_RegisterErrors(t *testing.T) {
	a := newTestAuthenticator()
	ctx := context.Background()

	if _, err := a.Register(ctx, "ops@example.com", "", "longenough"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"weak password", "new@example.com", "short", ErrWeakPassword},
		{"duplicate email", "OPS@example.com", "longenough", ErrEmailExists},
		{"blank email", "  ", "longenough", ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(ctx, tt.email, "", tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := models.NewUser("ops@example.com", "Ops", "hash")

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Run("valid token", func(t *testing.T) {
		claims, err := m.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.UserID != user.ID || claims.Email != user.Email || claims.DisplayName != "Ops" {
			t.Errorf("Unexpected claims: %+v", claims)
		}
	})

	t.Run("bearer header", func(t *testing.T) {
		claims, err := m.ValidateHeader("Bearer " + token)
		if err != nil {
			t.Fatalf("ValidateHeader failed: %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("UserID = %s, want %s", claims.UserID, user.ID)
		}
	})

	t.Run("header errors", func(t *testing.T) {
		if _, err := m.ValidateHeader(""); !errors.Is(err, ErrMissingToken) {
			t.Errorf("Expected ErrMissingToken, got %v", err)
		}
		if _, err := m.ValidateHeader("Basic " + token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
		if _, err := m.ValidateHeader(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTManager("test-secret", time.Hour)
		expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		old, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		_, err = m.Validate(old)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
		if !strings.Contains(err.Error(), "expired") {
			t.Errorf("Error %q does not mention expiry", err)
		}
	})
}
