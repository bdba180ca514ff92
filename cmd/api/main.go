// Entry point for REST API
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"hrms.service/internal/api"
	"hrms.service/internal/api/handler"
	"hrms.service/internal/config"
	"hrms.service/internal/core"
	"hrms.service/internal/metrics"
	"hrms.service/internal/ports/repository"
	"hrms.service/pkg/database"
	"hrms.service/pkg/logger"
	"hrms.service/pkg/telemetry"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load configuration")
	}

	// Configure structured logging
	logger.Setup(cfg.IsLocalDev)

	// Configure OpenTelemetry Tracing
	shutdownTracer, err := telemetry.InitTracer("hrms-api", cfg.OTLPEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to init tracer")
	}
	defer func() {
		_ = shutdownTracer(context.Background())
	}()

	// Store connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := database.NewInstrumentedClient(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to the document store")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	log.Info().Msg("Successfully connected to the document store.")

	db := client.Database(cfg.DBName)

	// Initialize dependencies
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// Unique indexes back the duplicate checks and the one-mark-per-day
	// invariant.
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	if err := employeeRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure employee indexes")
	}
	if err := attendanceRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure attendance indexes")
	}
	cancel()

	m := metrics.New()

	employeeService := core.NewEmployeeService(employeeRepo, attendanceRepo)
	attendanceService := core.NewAttendanceService(employeeRepo, attendanceRepo)
	dashboardService := core.NewDashboardService(employeeRepo, attendanceRepo)

	// Setup router and server
	router := api.NewRouter(api.RouterDeps{
		Employees:  &handler.EmployeeHandler{Service: employeeService, Metrics: m},
		Attendance: &handler.AttendanceHandler{Service: attendanceService, Metrics: m},
		Dashboard:  &handler.DashboardHandler{Service: dashboardService},
		Metrics:    m,
	})

	// Middleware to inject logger with trace ID
	loggerMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.EnrichContextWithLogger(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	// Wrap the router with OpenTelemetry middleware to create spans for
	// each request; CORS sits outermost so preflights never hit routes.
	handlerChain := api.CORS(cfg.AllowedOrigins())(
		otelhttp.NewHandler(loggerMiddleware(api.RequestLogger(router)), "api"),
	)

	serverAddr := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: handlerChain,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("HRMS API starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the requests it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
