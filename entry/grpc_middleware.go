package entry

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// GRPCServerLogging returns a unary server interceptor that gives every
// request a unique ID and a request-scoped slog.Logger (retrievable in
// handlers via entry.Logger), and logs the outcome of each call. The logger
// records whether the request arrived carrying a signature under
// MetadataSignatureKey, so that when this interceptor is chained ahead of
// GRPCRequireSignature, rejected calls can be traced back to a missing or
// bad signature in one place.
func GRPCServerLogging(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		// Check for an existing x-request-id header; and generate one if not found
		requestId := ""
		if values := metadata.ValueFromIncomingContext(ctx, "x-request-id"); len(values) > 0 {
			requestId = values[0]
		}
		if requestId == "" {
			requestId = uuid.NewString()
		}

		// Get the client IP
		remoteAddr := ""
		if p, ok := peer.FromContext(ctx); ok {
			remoteAddr = p.Addr.String()
		}

		// Note whether the request carries an HMAC signature in its metadata;
		// whether that signature actually verifies is decided downstream
		signed := len(metadata.ValueFromIncomingContext(ctx, MetadataSignatureKey)) > 0

		// Prepare a logger with the relevant details of this request
		logger := logger.With(
			"requestId", requestId,
			"grpcMethod", info.FullMethod,
			"remoteAddr", remoteAddr,
			"signed", signed,
		)
		logger.Debug("Handling request")

		// Handle the request, measuring how long it takes to execute
		start := time.Now()
		m, err := handler(context.WithValue(ctx, "logger", logger), req)
		elapsed := time.Since(start)
		elapsedMilliseconds := float64(elapsed.Nanoseconds()) / float64(1000000)

		// Write a final log message indicating that the request is finished, and noting any
		// error that resulted
		logger = logger.With("elapsedMilliseconds", elapsedMilliseconds)
		if err != nil {
			logger = logger.With("error", err)
			if grpcErr, ok := status.FromError(err); ok {
				logger = logger.With("grpcStatusCode", grpcErr.Code().String())
			}
			logger.Error("Request finished with error")
		} else {
			logger.Info("Request finished OK")
		}

		// Pass through the original result value and error unchanged
		return m, err
	}
}

// Logger returns a slog.Logger, guaranteed to be valid, for use within the
// context of a request being handled behind GRPCServerLogging
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value("logger").(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
