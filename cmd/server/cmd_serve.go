package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/db"
	thermoGrpc "thermonet.xyz/thermonet-service/pkg/grpc"
	thermoHttp "thermonet.xyz/thermonet-service/pkg/http"
	"thermonet.xyz/thermonet-service/pkg/messaging"
	"thermonet.xyz/thermonet-service/pkg/thermo"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ThermoNet server",
	Long:  `Start the HTTP API, and the gRPC API when THERMO_GRPC_HOST_PORT is set.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := common.LoadDotEnv(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	cfg, err := common.LoadConfig()
	if err != nil {
		return err
	}

	logger := common.GetLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	thermoCore := &thermo.Thermo{
		Store:   thermo.NewReadingStore(cfg.StoreCapacity),
		Mock:    thermo.NewMockSource(cfg.MockCount, time.Now().UnixNano(), nil, nil),
		Metrics: thermo.NewMetrics(registry),
	}
	thermoCore.WithDefaultServices()

	dialector, err := db.DialectorFor(cfg)
	if err != nil {
		return err
	}
	if dialector != nil {
		dbInstance, err := db.Open(dialector)
		if err != nil {
			return err
		}
		defer func() { _ = dbInstance.Close() }()

		thermoCore.Journal = db.NewJournal(dbInstance, cfg.StoreCapacity)
		if err := thermoCore.Restore(); err != nil {
			return err
		}
	}

	if cfg.NatsURL != "" {
		publisher, err := messaging.NewNatsPublisher(cfg.NatsURL, cfg.NatsSubject)
		if err != nil {
			return err
		}
		defer publisher.Close()
		thermoCore.Publisher = publisher
	}

	go thermoCore.Mock.Run(ctx, cfg.MockRefresh)

	var limiterStore *thermo.RateLimiterStore
	if cfg.LimiterEnabled() {
		limiterStore = thermo.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst)
	}
	limiterField := zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst))

	errCh := make(chan error, 2)

	var grpcServer *grpc.Server
	if cfg.GrpcHostPort != "" {
		readingServer := &thermoGrpc.ReadingServer{
			Thermo:           thermoCore,
			RateLimiterStore: limiterStore,
		}
		interceptor := readingServer.CreateRateLimitInterceptor([]string{
			thermoGrpc.ThermoNetService_SyncReadings_FullMethodName,
		})
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(interceptor))
		thermoGrpc.RegisterThermoNetServiceServer(grpcServer, readingServer)
		logger.Info("gRPC server created with:", limiterField)

		listener, err := net.Listen("tcp", cfg.GrpcHostPort)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.GrpcHostPort, err)
		}

		go func() {
			logger.Info("Starting gRPC server on: " + cfg.GrpcHostPort)
			if err := grpcServer.Serve(listener); err != nil {
				errCh <- fmt.Errorf("grpc server failed to serve: %w", err)
			}
		}()
	}

	rs := &thermoHttp.RestfulServer{
		Server:           gin.Default(),
		Thermo:           thermoCore,
		RateLimiterStore: limiterStore,
		Gatherer:         registry,
		CorsOrigins:      cfg.CorsOrigins,
	}
	rs.Setup()
	logger.Info("http server created with:", limiterField)

	httpServer := &http.Server{
		Addr:              cfg.HttpHostPort,
		Handler:           rs.Server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("HTTP server shutdown error", zap.Error(shutdownErr))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}

	return err
}
