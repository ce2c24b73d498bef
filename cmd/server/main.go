package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/splittab/splittab/internal/auth"
	"github.com/splittab/splittab/internal/config"
	"github.com/splittab/splittab/internal/handler"
	"github.com/splittab/splittab/internal/middleware"
	"github.com/splittab/splittab/internal/service"
	"github.com/splittab/splittab/internal/storage/sqlite"
	"github.com/splittab/splittab/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("splittab", cfg.LogLevel, cfg.AppEnv)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.TokenExpiryHours)*time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	ledger := service.NewLedgerService(store)
	groups := service.NewGroupService(store)
	friends := service.NewFriendService(store)

	authHandler := handler.NewAuthHandler(authenticator, jwtManager, store)
	expenseHandler := handler.NewExpenseHandler(ledger)
	settlementHandler := handler.NewSettlementHandler(ledger)
	balanceHandler := handler.NewBalanceHandler(ledger)
	groupHandler := handler.NewGroupHandler(groups)
	friendHandler := handler.NewFriendHandler(friends)

	requireAuth := middleware.RequireAuth(jwtManager)
	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/me", protected(authHandler.Me))
	mux.Handle("GET /api/users/search", protected(authHandler.SearchUsers))

	mux.Handle("GET /api/friends", protected(friendHandler.List))
	mux.Handle("POST /api/friends", protected(friendHandler.Add))
	mux.Handle("DELETE /api/friends/{id}", protected(friendHandler.Remove))

	mux.Handle("GET /api/groups", protected(groupHandler.List))
	mux.Handle("POST /api/groups", protected(groupHandler.Create))
	mux.Handle("GET /api/groups/{id}", protected(groupHandler.Get))
	mux.Handle("POST /api/groups/{id}/members", protected(groupHandler.AddMember))
	mux.Handle("DELETE /api/groups/{id}", protected(groupHandler.Delete))

	mux.Handle("GET /api/expenses", protected(expenseHandler.List))
	mux.Handle("POST /api/expenses", protected(expenseHandler.Create))
	mux.Handle("DELETE /api/expenses/{id}", protected(expenseHandler.Delete))

	mux.Handle("GET /api/settlements", protected(settlementHandler.List))
	mux.Handle("POST /api/settlements", protected(settlementHandler.Create))

	mux.Handle("GET /api/balances", protected(balanceHandler.Get))

	root := middleware.Logging(middleware.Metrics(middleware.CORS(mux)))

	// h2c lets gRPC-style and HTTP/2 clients connect without TLS;
	// terminate TLS at the proxy in front.
	h2cHandler := h2c.NewHandler(root, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           h2cHandler,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("failed to write health response", "error", err)
	}
}
