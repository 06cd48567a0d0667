package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-currency-converter API
// @version 1.0.0
// @description Single-screen currency converter backed by a public exchange-rate API
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		apiURL, apiTimeout,
		defaultFrom, defaultTo,
		corsOrigins,
		rateLimitRPS, rateLimitBurst,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		apiURL, apiTimeout,
		defaultFrom, defaultTo,
		corsOrigins,
		rateLimitRPS, rateLimitBurst,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, upstream API, widget, CORS and rate limit configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	apiURL string, apiTimeout time.Duration,
	defaultFrom, defaultTo string,
	corsOrigins []string,
	rateLimitRPS float64, rateLimitBurst int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Exchange-rate API config; a zero timeout waits indefinitely
	apiURL = getEnv("EXCHANGE_API_URL", "https://api.frankfurter.dev/v1")
	timeoutSecond, err := strconv.Atoi(getEnv("EXCHANGE_API_TIMEOUT_SECOND", "0"))
	if err != nil {
		return
	}
	apiTimeout = time.Duration(timeoutSecond) * time.Second

	// Widget defaults
	defaultFrom = strings.ToUpper(getEnv("DEFAULT_FROM_CURRENCY", "USD"))
	defaultTo = strings.ToUpper(getEnv("DEFAULT_TO_CURRENCY", "INR"))

	// CORS config
	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			corsOrigins = append(corsOrigins, origin)
		}
	}

	// Rate limit config
	if rateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64); err != nil {
		return
	}
	if rateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20")); err != nil {
		return
	}

	return
}

// run initializes the logger, metrics, exchange-rate client and widget,
// starts the currency list load and serves the HTTP API until ctx is done or
// a shutdown signal arrives.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	apiURL string, apiTimeout time.Duration,
	defaultFrom, defaultTo string,
	corsOrigins []string,
	rateLimitRPS float64, rateLimitBurst int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize exchange-rate client and widget
	rates := facades.NewExchangeRatesHTTPFacade(&http.Client{Timeout: apiTimeout}, apiURL, m)
	widget := services.NewWidget(rates, rates, defaultFrom, defaultTo, m)

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	logger.Log.Infow("Loading currency list", "url", apiURL)
	go widget.LoadCatalog(ctxShutdown)

	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: newRouter(widget, reg, corsOrigins, rateLimitRPS, rateLimitBurst,
			fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires the widget handlers, middleware, metrics and docs.
func newRouter(
	widget *services.Widget,
	reg *prometheus.Registry,
	corsOrigins []string,
	rateLimitRPS float64, rateLimitBurst int,
	swaggerURL string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.RateLimitMiddleware(rateLimitRPS, rateLimitBurst))

		r.Get("/currencies", handlers.NewGetCurrenciesHandler(widget))
		r.Get("/state", handlers.NewGetStateHandler(widget))
		r.Put("/selection", handlers.NewSelectHandler(widget))
		r.Post("/swap", handlers.NewSwapHandler(widget))
		r.Post("/convert", handlers.NewConvertHandler(widget))
	})

	return r
}
