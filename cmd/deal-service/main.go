package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LavaJover/shvark-deal-service/internal/app/background"
	"github.com/LavaJover/shvark-deal-service/internal/app/setup"
	"github.com/LavaJover/shvark-deal-service/internal/config"
	"github.com/LavaJover/shvark-deal-service/internal/delivery/grpcapi"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/logger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	appLogger, err := logger.NewLogger(cfg.LogConfig)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Error("deal service stopped with error", "error", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.DealConfig, appLogger *slog.Logger) error {
	deps, err := setup.InitializeDependencies(cfg, appLogger)
	if err != nil {
		return err
	}
	defer deps.Close()

	useCases, err := setup.InitializeUseCases(deps)
	if err != nil {
		return err
	}

	tasks := background.NewBackgroundTasks(
		useCases.VoteUsecase,
		deps.Subscriber,
		cfg.KafkaService.SubjectTopic,
		cfg.KafkaService.ConsumerGroup,
		appLogger,
	)
	if err := tasks.StartAll(ctx); err != nil {
		return fmt.Errorf("background tasks: %w", err)
	}

	// Creating gRPC server
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(grpcapi.LoggingInterceptor(appLogger)))
	grpcapi.RegisterOrderServer(grpcServer, grpcapi.NewOrderHandler(useCases.OrderUsecase))
	grpcapi.RegisterVoteServer(grpcServer, grpcapi.NewVoteHandler(useCases.VoteUsecase))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(grpcapi.OrderServiceName, healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(grpcapi.VoteServiceName, healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.GRPCServer.Host, cfg.GRPCServer.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		appLogger.Info("gRPC server started", "addr", lis.Addr().String())
		errCh <- grpcServer.Serve(lis)
	}()
	go func() {
		appLogger.Info("metrics server started", "addr", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		appLogger.Info("shutdown signal received")
	case serveErr = <-errCh:
	}

	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GRPCServer.ShutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcServer.Stop()
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn("metrics server shutdown failed", "error", err.Error())
	}

	appLogger.Info("deal service stopped")
	return serveErr
}
