package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	grpcRouter "github.com/dtroode/aethercure-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/aethercure-server/internal/api/grpc/server"
	httpcontext "github.com/dtroode/aethercure-server/internal/api/http/context"
	"github.com/dtroode/aethercure-server/internal/api/http/middleware"
	httpRouter "github.com/dtroode/aethercure-server/internal/api/http/router"
	httpServer "github.com/dtroode/aethercure-server/internal/api/http/server"
	"github.com/dtroode/aethercure-server/internal/config"
	"github.com/dtroode/aethercure-server/internal/flow"
	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/metrics"
	"github.com/dtroode/aethercure-server/internal/model"
	"github.com/dtroode/aethercure-server/internal/notify"
	"github.com/dtroode/aethercure-server/internal/otp"
	"github.com/dtroode/aethercure-server/internal/password"
	"github.com/dtroode/aethercure-server/internal/repository/postgres"
	"github.com/dtroode/aethercure-server/internal/security"
	"github.com/dtroode/aethercure-server/internal/server"
	"github.com/dtroode/aethercure-server/internal/service"
	"github.com/dtroode/aethercure-server/internal/token"
	"github.com/dtroode/aethercure-server/internal/worker/cleanup"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const (
	shutdownTimeout     = 10 * time.Second
	readinessInterval   = 15 * time.Second
	rateLimiterIdleTime = 10 * time.Minute
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	fileRepo := postgres.NewFileRepository(db)
	shareRepo := postgres.NewShareRepository(db)
	medicalRepo := postgres.NewMedicalRepository(db)

	flowStore, closeFlows := newFlowStore(ctx, cfg, logger)
	defer closeFlows()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	sanitizer := security.NewTextSanitizer()

	authService := service.NewAuth(
		userRepo,
		flowStore,
		password.NewPBKDF2(cfg.KDF.Iterations),
		otp.New(otp.Params{Period: cfg.OTP.Period, Digits: cfg.OTP.Digits, Window: cfg.OTP.Window}, nil),
		token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL, nil),
		newNotifier(cfg, logger),
		collector,
		logger,
		service.AuthOptions{
			FlowTTL:    cfg.Flow.TTL,
			VerifyLink: cfg.Links.Verify,
			ResetLink:  cfg.Links.Reset,
		},
	)
	userService := service.NewUser(userRepo, logger)
	fileService := service.NewFile(fileRepo, sanitizer, logger)
	shareService := service.NewShare(shareRepo, fileRepo, time.Duration(cfg.Share.DefaultHours)*time.Hour, nil, logger)
	medicalService := service.NewMedical(medicalRepo, sanitizer, logger)

	rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RatePerMinute, rateLimiterIdleTime, logger)
	defer rateLimiter.Stop()

	router := httpRouter.New(httpRouter.Services{
		Auth:    authService,
		Tokens:  authService,
		User:    userService,
		File:    fileService,
		Share:   shareService,
		Medical: medicalService,
	}, httpcontext.NewManager(), rateLimiter, collector, metrics.Handler(registry), logger)

	apiServer := httpServer.NewHTTPServer(router.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))
	apiSecurity := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	healthRouter := grpcRouter.New(db, logger)
	healthServer := grpcServer.NewGRPCServer(healthRouter.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	cleanupDB := stdlib.OpenDBFromPool(db.Pool)
	defer cleanupDB.Close()
	sharesCleanup := cleanup.NewShares(cleanupDB, collector, nil, logger.With("worker", "shares_cleanup"))

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		healthRouter.WatchReadiness(ctx, readinessInterval)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		sharesCleanup.Start(ctx, cfg.Share.CleanupInterval)
	}()

	servers := []struct {
		server model.Server
		sl     model.SecurityLayer
	}{
		{server: apiServer, sl: apiSecurity},
		{server: healthServer, sl: server.NewPlainListener()},
	}
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s.server, s.sl)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newFlowStore(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.FlowStore, func()) {
	if cfg.Flow.Backend == config.FlowBackendRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatal("failed to connect to redis", "error", err, "addr", cfg.Redis.Addr)
		}
		logger.Info("using redis flow store", "addr", cfg.Redis.Addr)
		return flow.NewRedis(client), func() { client.Close() }
	}

	store := flow.NewMemory(nil)
	logger.Info("using in-memory flow store")
	return store, func() { store.Close() }
}

func newNotifier(cfg *config.Config, logger *logger.Logger) model.Notifier {
	if cfg.Mail.Provider == config.MailProviderResend {
		return notify.NewResend(nil, cfg.Mail.Endpoint, cfg.Mail.APIKey, cfg.Mail.From)
	}
	return notify.NewLog(logger)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
