package router

import (
	"context"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/dtroode/aethercure-server/internal/api/grpc/middleware"
	"github.com/dtroode/aethercure-server/internal/logger"
)

// ServiceName is the health service name probes ask for. The empty name
// reports overall server health and follows it.
const ServiceName = "aethercure.Server"

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router represents a gRPC router for operational endpoints.
// It serves the standard health protocol backed by a database readiness check.
type Router struct {
	pinger Pinger
	health *health.Server
	logger *logger.Logger
}

// New creates new gRPC Router instance. Services start NOT_SERVING until the
// first successful ping.
func New(pinger Pinger, logger *logger.Logger) *Router {
	h := health.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &Router{
		pinger: pinger,
		health: h,
		logger: logger,
	}
}

func skipHealthLogging(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/"+healthpb.Health_ServiceDesc.ServiceName+"/")
}

// Register builds the gRPC server with logging and recovery interceptors and
// registers the health and reflection services.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoverOpt := recovery.WithRecoveryHandler(func(p any) error {
		r.logger.Error("gRPC router: panic recovered",
			"panic", p)
		return status.Error(codes.Internal, "internal server error")
	})

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			selector.UnaryServerInterceptor(logging.HandleGRPC, selector.MatchFunc(skipHealthLogging)),
			recovery.UnaryServerInterceptor(recoverOpt),
		),
		grpc.ChainStreamInterceptor(
			selector.StreamServerInterceptor(logging.HandleGRPCStream, selector.MatchFunc(skipHealthLogging)),
			recovery.StreamServerInterceptor(recoverOpt),
		),
	)

	healthpb.RegisterHealthServer(s, r.health)
	reflection.Register(s)

	return s
}

// Check pings the store once and updates the serving status.
func (r *Router) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	st := healthpb.HealthCheckResponse_SERVING
	if err := r.pinger.Ping(ctx); err != nil {
		r.logger.Warn("gRPC router: readiness check failed",
			"error", err.Error())
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	r.health.SetServingStatus("", st)
	r.health.SetServingStatus(ServiceName, st)
	return st
}

// WatchReadiness runs Check every interval until ctx is done, then marks
// the server as shutting down.
func (r *Router) WatchReadiness(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.check(ctx, interval)
	for {
		select {
		case <-ctx.Done():
			r.health.Shutdown()
			return
		case <-ticker.C:
			r.check(ctx, interval)
		}
	}
}

func (r *Router) check(ctx context.Context, timeout time.Duration) {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	r.Check(pingCtx)
}
