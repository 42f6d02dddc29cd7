// Package metrics exposes the gateway's prometheus instruments.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"watchdog_gateway/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const namespace = "watchdog"

// Collector owns a registry so that several collectors can live in one
// process (and in tests) without clashing on the default registry.
type Collector struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
	queued   prometheus.Gauge
}

// NewCollector creates the instruments for a component, e.g. "grpc" or "http".
func NewCollector(subsystem string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Number of requests handled, by method and status code.",
		}, []string{"method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Time spent handling a request, by method.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"method"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_in_flight",
			Help:      "Requests currently being handled.",
		}),
		queued: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_waiting",
			Help:      "Requests waiting for a free worker.",
		}),
	}
	c.registry.MustRegister(
		c.requests,
		c.duration,
		c.inFlight,
		c.queued,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Observe records one finished request.
func (c *Collector) Observe(method, code string, elapsed time.Duration) {
	c.requests.WithLabelValues(method, code).Inc()
	c.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// InFlight returns the gauge tracking requests being handled.
func (c *Collector) InFlight() prometheus.Gauge {
	return c.inFlight
}

// Queued returns the gauge tracking requests waiting for a worker.
func (c *Collector) Queued() prometheus.Gauge {
	return c.queued
}

// UnaryServerInterceptor counts and times every unary call.
func (c *Collector) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		c.inFlight.Inc()
		defer c.inFlight.Dec()

		resp, err := handler(ctx, req)
		c.Observe(info.FullMethod, status.Code(err).String(), time.Since(start))
		return resp, err
	}
}

// Serve exposes /metrics on addr until ctx is done.
func Serve(ctx context.Context, addr string, c *Collector, log *logging.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("Starting metrics endpoint", logging.String("address", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
