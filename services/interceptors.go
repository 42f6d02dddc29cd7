package services

import (
	"context"
	"runtime/debug"
	"time"

	"watchdog_gateway/logging"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

// RequestIDFromContext returns the id assigned by the request id interceptor.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func requestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		var id string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(RequestIDHeader); len(ids) > 0 && ids[0] != "" {
				id = ids[0]
			}
		}
		if id == "" {
			id = uuid.NewString()
		}
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))

		return handler(context.WithValue(ctx, requestIDKey{}, id), req)
	}
}

func loggingInterceptor(log *logging.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		var addr string
		if p, ok := peer.FromContext(ctx); ok && p != nil {
			addr = p.Addr.String()
		}
		fields := []logging.Field{
			logging.String("method", info.FullMethod),
			logging.String("code", status.Code(err).String()),
			logging.Duration("took", time.Since(start)),
			logging.String("remote-ip-addr", addr),
			logging.String("request-id", RequestIDFromContext(ctx)),
		}
		if err != nil {
			log.Info("Invoked RPC call", append(fields, logging.Error(err))...)
		} else {
			log.Debug("Invoked RPC call", fields...)
		}
		return resp, err
	}
}

// workerPoolInterceptor bounds the number of calls running at once. Calls
// beyond the limit wait for a slot or for their context to end.
func workerPoolInterceptor(workers int64, waiting prometheus.Gauge) grpc.UnaryServerInterceptor {
	sem := semaphore.NewWeighted(workers)
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		waiting.Inc()
		err := sem.Acquire(ctx, 1)
		waiting.Dec()
		if err != nil {
			return nil, status.FromContextError(err).Err()
		}
		defer sem.Release(1)

		return handler(ctx, req)
	}
}

func recoveryInterceptor(log *logging.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Recovered from panic",
					logging.String("method", info.FullMethod),
					logging.Any("panic", r),
					logging.String("stack", string(debug.Stack())),
				)
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}
