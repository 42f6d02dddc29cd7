package services

import (
	"context"
	"net"
	"strconv"
	"time"

	"watchdog_gateway/config"
	"watchdog_gateway/logging"
	"watchdog_gateway/metrics"
	pb "watchdog_gateway/proto"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const stopTimeout = 10 * time.Second

// GRPCServer serves the Sentiment and Quotes services.
type GRPCServer struct {
	config.GRPC

	log     *logging.Logger
	srv     *grpc.Server
	health  *health.Server
	metrics *metrics.Collector

	sentiment pb.SentimentServer
	quotes    pb.QuotesServer
}

func NewGRPCServer(
	log *logging.Logger,
	cfg config.GRPC,
	sentiment pb.SentimentServer,
	quotes pb.QuotesServer,
	collector *metrics.Collector,
) *GRPCServer {
	return &GRPCServer{
		GRPC:      cfg,
		log:       log.Named("grpc"),
		sentiment: sentiment,
		quotes:    quotes,
		metrics:   collector,
	}
}

func (g *GRPCServer) getTCPListener() (net.Listener, error) {
	addr := net.JoinHostPort(g.IP, strconv.Itoa(g.Port))
	g.log.Info("Starting gRPC based API", logging.String("addr", g.IP), logging.Int("port", g.Port))

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "could not listen on %s", addr)
	}
	return lis, nil
}

func (g *GRPCServer) serverOptions() ([]grpc.ServerOption, error) {
	workers := g.Workers()
	opts := []grpc.ServerOption{
		grpc.NumStreamWorkers(uint32(workers)),
		grpc.ChainUnaryInterceptor(
			requestIDInterceptor(),
			loggingInterceptor(g.log),
			// in-flight counts only calls holding a worker
			workerPoolInterceptor(int64(workers), g.metrics.Queued()),
			g.metrics.UnaryServerInterceptor(),
			recoveryInterceptor(g.log),
		),
	}

	if g.TLS.Enabled {
		creds, err := credentials.NewServerTLSFromFile(g.TLS.CertFile, g.TLS.KeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "could not load tls key pair")
		}
		opts = append(opts, grpc.Creds(creds))
	}
	return opts, nil
}

// Start serves until ctx is done, then stops gracefully.
// Uses a TCP listener on the configured address if lis is nil.
func (g *GRPCServer) Start(ctx context.Context, lis net.Listener) error {
	opts, err := g.serverOptions()
	if err != nil {
		return err
	}
	if lis == nil {
		if lis, err = g.getTCPListener(); err != nil {
			return err
		}
	}

	g.srv = grpc.NewServer(opts...)
	pb.RegisterSentimentServer(g.srv, g.sentiment)
	pb.RegisterQuotesServer(g.srv, g.quotes)

	g.health = health.NewServer()
	healthpb.RegisterHealthServer(g.srv, g.health)
	g.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	g.health.SetServingStatus("watchdog.Sentiment", healthpb.HealthCheckResponse_SERVING)
	g.health.SetServingStatus("watchdog.Quotes", healthpb.HealthCheckResponse_SERVING)

	if g.Reflection {
		reflection.Register(g.srv)
	}

	served := make(chan struct{})
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		select {
		case <-ctx.Done():
			g.Stop()
		case <-served:
		}
		return nil
	})
	eg.Go(func() error {
		defer close(served)
		if err := g.srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	return eg.Wait()
}

// Stop drains in-flight calls, forcing the stop after a while.
func (g *GRPCServer) Stop() {
	if g.srv == nil {
		return
	}
	if g.health != nil {
		g.health.Shutdown()
	}

	done := make(chan struct{})
	go func() {
		g.log.Info("Gracefully stopping gRPC based API")
		g.srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(stopTimeout):
		g.log.Info("Force stopping gRPC based API")
		g.srv.Stop()
	}
}
