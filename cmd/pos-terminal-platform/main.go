package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/api/handlers"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/config"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/health"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/metrics"
	repository "github.com/aaravmahajanofficial/pos-terminal-platform/internal/repositories"
	redisRepo "github.com/aaravmahajanofficial/pos-terminal-platform/internal/repositories/redis"
	service "github.com/aaravmahajanofficial/pos-terminal-platform/internal/services"
	"github.com/aaravmahajanofficial/pos-terminal-platform/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Session state: catalog + cart + ledger behind one lock
	repos := repository.New(cfg)

	catalogService := service.NewCatalogService(repos.Catalog)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartService := service.NewCartService(repos.Cart)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutService := service.NewCheckoutService(repos.Ledger)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	reportService := service.NewReportService(repos.Ledger)
	transactionHandler := handlers.NewTransactionHandler(reportService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Redis is optional; without it the checkout endpoint is not throttled.
	checkout := checkoutHandler.Checkout()

	if cfg.RedisConnect.Enabled() {

		redisRepository, err := redisRepo.NewRedisRepo(cfg)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", "error", err.Error())
			os.Exit(1)
		}

		defer func() {
			if err := redisRepository.Close(); err != nil {
				slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
			}
		}()

		checkout = middleware.RateLimit(redisRepository, checkout)
	}

	healthHandler, err := health.NewHealthHandler(cfg, repos.Store)
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("session initialized",
		slog.String("env", cfg.Env),
		slog.Int("catalog_size", len(cfg.Catalog.Seed)),
		slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("POST /api/v1/products", catalogHandler.CreateProduct())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("PATCH /api/v1/products/{id}/stock", catalogHandler.AdjustStock())
	routerMux.HandleFunc("PATCH /api/v1/products/{id}/price", catalogHandler.AdjustPrice())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{productId}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/checkout", checkout)
	routerMux.HandleFunc("GET /api/v1/transactions", transactionHandler.ListTransactions())
	routerMux.HandleFunc("GET /api/v1/transactions/export", transactionHandler.ExportTransactions())
	routerMux.HandleFunc("GET /api/v1/reports/summary", reportHandler.Summary())
	routerMux.HandleFunc("GET /api/v1/reports/top-sellers", reportHandler.TopSellers())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "pos-terminal-platform")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

}
