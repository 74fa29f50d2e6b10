package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	"sendtocal/internal/config"
	hhttp "sendtocal/internal/handler/http"
	hevent "sendtocal/internal/handler/http/event"
	"sendtocal/internal/handler/http/requestid"
	"sendtocal/internal/infra/extractor"
	"sendtocal/internal/observability/logging"
	"sendtocal/internal/observability/tracing"
	eventUC "sendtocal/internal/usecase/event"
)

func main() {
	configPath := flag.String("config", "", "path to the server YAML config (optional)")
	flag.Parse()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.LoadServerConfig(*configPath)
	if err != nil {
		logger.Error("failed to load server configuration", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing := initTracing(logger)
	defer shutdownTracing()

	version := getVersion()

	ex, err := extractor.NewFromEnv()
	if err != nil {
		logger.Error("failed to initialize extractor", slog.Any("error", err))
		os.Exit(1)
	}

	handler := setupServer(logger, cfg, ex, version)

	runServer(logger, cfg, handler, version)
}

// initTracing installs a tracer provider and W3C propagators.
// Span export is left to an external collector setup; the provider here
// only makes spans and trace IDs real instead of noop.
func initTracing(logger *slog.Logger) func() {
	res := resource.NewSchemaless(
		attribute.String("service.name", "sendtocal"),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("tracer provider shutdown failed", slog.Any("error", err))
		}
	}
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, cfg *config.ServerConfig, ex extractor.EventExtractor, version string) http.Handler {
	svc := eventUC.NewService(ex)

	provider, configured := extractorStatus()

	mux := http.NewServeMux()

	extractLimiter := hhttp.NewExtractLimiter(cfg.Server.ExtractRate, cfg.Server.ExtractBurst)
	hevent.Register(mux, svc, extractLimiter.Limit)

	mux.Handle("GET /health", &hhttp.HealthHandler{
		Version:    version,
		Provider:   provider,
		Configured: configured,
	})
	mux.HandleFunc("GET /live", hhttp.LiveHandler)
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	logger.Info("routes registered",
		slog.String("provider", provider),
		slog.Bool("provider_configured", configured),
		slog.Float64("extract_rate", cfg.Server.ExtractRate),
		slog.Int("extract_burst", cfg.Server.ExtractBurst))

	return applyMiddleware(logger, cfg, mux)
}

// extractorStatus reports the active provider name and whether its
// credential is present, for the health endpoint.
func extractorStatus() (string, bool) {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("EXTRACTOR_PROVIDER")))
	if provider == "" {
		provider = extractor.ProviderClaude
	}

	switch provider {
	case extractor.ProviderClaude:
		return provider, os.Getenv("ANTHROPIC_API_KEY") != ""
	case extractor.ProviderOpenAI:
		return provider, os.Getenv("OPENAI_API_KEY") != ""
	default:
		// noop and anything else needs no credential
		return provider, true
	}
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS → Request ID → Tracing → Recovery →
// Logging → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, cfg *config.ServerConfig, handler http.Handler) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.CORS(cfg.Server.CORSOrigins)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.ServerConfig, handler http.Handler, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
