package access

import (
	"context"
	"path"
	"time"

	"github.com/0xPolygon/flowclient/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const tracerName = "github.com/0xPolygon/flowclient/access"

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flowclient",
		Subsystem: "access",
		Name:      "requests_total",
		Help:      "Access API calls by method and gRPC status code",
	}, []string{"method", "code"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "flowclient",
		Subsystem: "access",
		Name:      "request_duration_seconds",
		Help:      "Latency of the Access API calls",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration)
}

// methodName returns the last element of a full gRPC method, e.g. "Ping" for
// "/flow.access.AccessAPI/Ping"
func methodName(fullMethod string) string {
	return path.Base(fullMethod)
}

func loggingInterceptor(logger *log.Logger) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{},
		cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			logger.Debugf("access call %s failed after %s: %v", methodName(method), time.Since(start), err)
			return err
		}
		logger.Debugf("access call %s done in %s", methodName(method), time.Since(start))
		return nil
	}
}

func metricsInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{},
		cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		name := methodName(method)
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		requestDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		requestsTotal.WithLabelValues(name, status.Code(err).String()).Inc()
		return err
	}
}

func tracingInterceptor() grpc.UnaryClientInterceptor {
	tracer := otel.Tracer(tracerName)
	return func(ctx context.Context, method string, req, reply interface{},
		cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx, span := tracer.Start(ctx, methodName(method))
		defer span.End()
		span.SetAttributes(attribute.String("rpc.method", method))
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, status.Code(err).String())
		}
		return err
	}
}

// rateLimitInterceptor blocks until the limiter allows the call or ctx is done
func rateLimitInterceptor(limiter *rate.Limiter) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{},
		cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if err := limiter.Wait(ctx); err != nil {
			return status.FromContextError(err).Err()
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func newLimiter(cfg Config) *rate.Limiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
}

func interceptors(logger *log.Logger, cfg Config) []grpc.UnaryClientInterceptor {
	res := []grpc.UnaryClientInterceptor{
		tracingInterceptor(),
		metricsInterceptor(),
		loggingInterceptor(logger),
	}
	if limiter := newLimiter(cfg); limiter != nil {
		res = append(res, rateLimitInterceptor(limiter))
	}
	return res
}
