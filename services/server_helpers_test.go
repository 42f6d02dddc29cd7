package services_test

import (
	"context"
	"net"
	"testing"

	"watchdog_gateway/config"
	"watchdog_gateway/logging"
	"watchdog_gateway/metrics"
	pb "watchdog_gateway/proto"
	"watchdog_gateway/services"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

type testServer struct {
	lis     *bufconn.Listener
	metrics *metrics.Collector
}

func (s *testServer) dialer() grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return s.lis.DialContext(ctx)
	})
}

// gateway returns a client of the server, closed with the test.
func (s *testServer) gateway(t *testing.T) *services.GatewayClient {
	t.Helper()
	c, err := services.DialGateway(config.Gateway{Address: "passthrough:///bufnet"}, s.dialer())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func (s *testServer) conn(t *testing.T) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient("passthrough:///bufnet", s.dialer(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func startServer(t *testing.T, cfg config.GRPC, sentiment pb.SentimentServer, quotes pb.QuotesServer) *testServer {
	t.Helper()
	if sentiment == nil {
		sentiment = &pb.UnimplementedSentimentServer{}
	}
	if quotes == nil {
		quotes = &pb.UnimplementedQuotesServer{}
	}

	ts := &testServer{
		lis:     bufconn.Listen(1 << 20),
		metrics: metrics.NewCollector("grpc"),
	}
	srv := services.NewGRPCServer(logging.NewTestLogger(), cfg, sentiment, quotes, ts.metrics)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- srv.Start(ctx, ts.lis) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-errc)
	})
	return ts
}
