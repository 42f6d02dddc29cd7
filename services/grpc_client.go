package services

import (
	"context"
	"time"

	"watchdog_gateway/config"
	"watchdog_gateway/models"
	pb "watchdog_gateway/proto"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Gateway is what the HTTP and NATS edges need from the gRPC gateway.
type Gateway interface {
	DetectSentiment(ctx context.Context, text string) (float64, error)
	DetectQuotes(ctx context.Context, symbol, period string) ([]models.PricePoint, error)
	Check(ctx context.Context) error
}

// GatewayClient talks to a running GRPCServer. Errors returned by its
// methods keep their gRPC status.
type GatewayClient struct {
	conn    *grpc.ClientConn
	timeout time.Duration

	sentiment pb.SentimentClient
	quotes    pb.QuotesClient
	health    healthpb.HealthClient
}

// DialGateway connects to cfg.Address, over TLS when a CA file is set.
func DialGateway(cfg config.Gateway, opts ...grpc.DialOption) (*GatewayClient, error) {
	creds := insecure.NewCredentials()
	if cfg.CAFile != "" {
		var err error
		if creds, err = credentials.NewClientTLSFromFile(cfg.CAFile, ""); err != nil {
			return nil, errors.Wrap(err, "could not load gateway ca")
		}
	}
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(creds)}, opts...)

	conn, err := grpc.NewClient(cfg.Address, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "could not connect to gateway at %s", cfg.Address)
	}
	return &GatewayClient{
		conn:      conn,
		timeout:   cfg.Timeout.Get(),
		sentiment: pb.NewSentimentClient(conn),
		quotes:    pb.NewQuotesClient(conn),
		health:    healthpb.NewHealthClient(conn),
	}, nil
}

func (c *GatewayClient) Close() error {
	return c.conn.Close()
}

func (c *GatewayClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *GatewayClient) DetectSentiment(ctx context.Context, text string) (float64, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.sentiment.Detect(ctx, &pb.SentimentRequest{Tweet: text})
	if err != nil {
		return 0, err
	}
	return float64(resp.GetPolarity()), nil
}

func (c *GatewayClient) DetectQuotes(ctx context.Context, symbol, period string) ([]models.PricePoint, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.quotes.Detect(ctx, &pb.QuoteRequest{Name: symbol, Period: period})
	if err != nil {
		return nil, err
	}
	points := make([]models.PricePoint, 0, len(resp.GetQuotes()))
	for _, q := range resp.GetQuotes() {
		points = append(points, models.PricePoint{
			Time:  q.GetTime().GetSeconds(),
			Price: float64(q.GetPrice()),
		})
	}
	return points, nil
}

// Check asks the gateway's health service about the whole server.
func (c *GatewayClient) Check(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return err
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return status.Errorf(codes.Unavailable, "gateway is %s", resp.GetStatus())
	}
	return nil
}
