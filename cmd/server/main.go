package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/profitshare/internal/app"
	"github.com/mmynk/profitshare/internal/audit"
	"github.com/mmynk/profitshare/internal/auth"
	"github.com/mmynk/profitshare/internal/config"
	"github.com/mmynk/profitshare/internal/httpapi"
	"github.com/mmynk/profitshare/internal/ledger"
	"github.com/mmynk/profitshare/internal/metrics"
	"github.com/mmynk/profitshare/internal/middleware"
	"github.com/mmynk/profitshare/internal/service"
	"github.com/mmynk/profitshare/pkg/api/apiconnect"
	"github.com/mmynk/profitshare/pkg/logging"
)

const auditBufferSize = 100

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.SetupWith(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	store, err := app.OpenStore(ctx, cfg, m)
	if err != nil {
		return err
	}
	defer store.Close()

	worker := audit.NewWorker(store, auditBufferSize)
	worker.Start()
	defer worker.Shutdown()

	l, err := app.NewLedger(ctx, cfg, store,
		ledger.WithAuditLogger(worker),
		ledger.WithSummaryObserver(m),
	)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()

	// Register Connect services
	interceptors := []connect.Interceptor{middleware.LoggingInterceptor(m)}
	var restMiddlewares []func(http.Handler) http.Handler
	if cfg.AuthEnabled() {
		jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
		authSvc := service.NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, slog.Default())
		mux.Handle(apiconnect.NewAuthServiceHandler(authSvc, connect.WithInterceptors(interceptors...)))

		interceptors = append(interceptors, middleware.MutationAuth(jwtManager))
		restMiddlewares = append(restMiddlewares, middleware.RequireAuthHTTP(jwtManager))
		slog.Info("Authentication enabled", "token_ttl", cfg.TokenTTL)
	} else {
		slog.Warn("JWT_SECRET not set, mutations are unauthenticated")
	}
	opts := connect.WithInterceptors(interceptors...)

	mux.Handle(apiconnect.NewTransactionServiceHandler(service.NewTransactionService(l), opts))
	mux.Handle(apiconnect.NewStakeholderServiceHandler(service.NewStakeholderService(l), opts))
	mux.Handle(apiconnect.NewPaymentServiceHandler(service.NewPaymentService(l), opts))
	mux.Handle(apiconnect.NewSummaryServiceHandler(service.NewSummaryService(l), opts))

	mux.Handle("/api/", httpapi.NewRouter(l, restMiddlewares...))
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(corsMiddleware(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", cfg.Addr, "time_zone", cfg.Location.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
