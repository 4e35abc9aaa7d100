package middleware

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/profitshare/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key for storing the authenticated user's email.
	EmailKey contextKey = "email"
)

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetEmail extracts the user email from the context.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// WithUser returns a copy of ctx carrying the operator identity.
func WithUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, EmailKey, email)
}

func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return WithUser(ctx, claims.UserID, claims.Email)
}

// RequireAuth returns a Connect interceptor that rejects requests without a
// valid bearer token and adds the operator to the context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			claims, err := jwtManager.ValidateHeader(req.Header().Get("Authorization"))
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			return next(withClaims(ctx, claims), req)
		}
	}
}

// OptionalAuth adds the operator to the context when a valid token is
// present and lets every request through.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if claims, err := jwtManager.ValidateHeader(req.Header().Get("Authorization")); err == nil {
				ctx = withClaims(ctx, claims)
			}
			return next(ctx, req)
		}
	}
}

// MutationAuth requires a token for procedures that change data. Procedures
// whose method name starts with Get or List accept a token but do not need
// one.
func MutationAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	required := RequireAuth(jwtManager)
	optional := OptionalAuth(jwtManager)
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		requiredNext, optionalNext := required(next), optional(next)
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if isReadOnly(req.Spec().Procedure) {
				return optionalNext(ctx, req)
			}
			return requiredNext(ctx, req)
		}
	}
}

func isReadOnly(procedure string) bool {
	method := procedure[strings.LastIndex(procedure, "/")+1:]
	return strings.HasPrefix(method, "Get") || strings.HasPrefix(method, "List")
}

// RequireAuthHTTP is the REST counterpart of RequireAuth. Safe methods
// (GET, HEAD, OPTIONS) pass through unauthenticated.
func RequireAuthHTTP(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				if claims, err := jwtManager.ValidateHeader(r.Header.Get("Authorization")); err == nil {
					r = r.WithContext(withClaims(r.Context(), claims))
				}
				next.ServeHTTP(w, r)
				return
			}

			claims, err := jwtManager.ValidateHeader(r.Header.Get("Authorization"))
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}
