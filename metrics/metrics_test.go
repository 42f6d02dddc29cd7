package metrics_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"watchdog_gateway/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnaryServerInterceptorCountsByCode(t *testing.T) {
	c := metrics.NewCollector("grpc")
	intercept := c.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/watchdog.Quotes/Detect"}

	ok := func(context.Context, interface{}) (interface{}, error) { return "ok", nil }
	bad := func(context.Context, interface{}) (interface{}, error) {
		return nil, status.Error(codes.InvalidArgument, "Ticker doesn't exist")
	}

	_, err := intercept(context.Background(), nil, info, ok)
	require.NoError(t, err)
	_, err = intercept(context.Background(), nil, info, ok)
	require.NoError(t, err)
	_, err = intercept(context.Background(), nil, info, bad)
	require.Error(t, err)

	expected := `
# HELP watchdog_grpc_requests_total Number of requests handled, by method and status code.
# TYPE watchdog_grpc_requests_total counter
watchdog_grpc_requests_total{code="InvalidArgument",method="/watchdog.Quotes/Detect"} 1
watchdog_grpc_requests_total{code="OK",method="/watchdog.Quotes/Detect"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "watchdog_grpc_requests_total"))
}

func TestUnknownErrorsAreCountedAsUnknown(t *testing.T) {
	c := metrics.NewCollector("grpc")
	c.Observe("/watchdog.Sentiment/Detect", status.Code(errors.New("boom")).String(), time.Millisecond)

	n, err := testutil.GatherAndCount(c.Registry(), "watchdog_grpc_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHandlerServesRegistry(t *testing.T) {
	c := metrics.NewCollector("http")
	c.Observe("GET /quotes/:symbol", "200", 10*time.Millisecond)

	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rr.Code)
	assert.Contains(t, rr.Body.String(), `watchdog_http_request_duration_seconds_count{method="GET /quotes/:symbol"} 1`)
}
