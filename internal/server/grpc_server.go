package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/oggyb/gramps-gamification/internal/config"
)

// NewGRPCServer builds a gRPC server with request logging and registers all
// provided services.
func NewGRPCServer(log *slog.Logger, registrars ...Registrar) *grpc.Server {
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(UnaryLoggingInterceptor(log)))

	// register all services
	for _, r := range registrars {
		r.Register(grpcServer)
	}
	return grpcServer
}

// UnaryLoggingInterceptor logs method, status code and duration of every call.
func UnaryLoggingInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		attrs := []any{
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		}
		if err != nil {
			log.Warn("grpc call failed", append(attrs, "err", err)...)
		} else {
			log.Debug("grpc call", attrs...)
		}
		return resp, err
	}
}

// StartGRPCServer boots a gRPC server on GRPC_HOST:GRPC_PORT and serves until
// ctx is done, then stops gracefully.
func StartGRPCServer(ctx context.Context, cfg *config.Config, log *slog.Logger, registrars ...Registrar) error {
	addr := fmt.Sprintf("%s:%s", cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return Serve(ctx, lis, NewGRPCServer(log, registrars...))
}

// Serve runs grpcServer on lis until ctx is done.
func Serve(ctx context.Context, lis net.Listener, grpcServer *grpc.Server) error {
	errCh := make(chan error, 1)
	go func() { errCh <- grpcServer.Serve(lis) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		grpcServer.GracefulStop()
		if err := <-errCh; !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	}
}
