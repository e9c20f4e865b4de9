package relay

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Log field keys.
const (
	MethodKey            = "method"
	URIKey               = "uri"
	RequestIDKey         = "request_id"
	StatusCodeKey        = "status_code"
	ResponseBodySizeBKey = "response_body_size_B"
	ExecutionDurationKey = "execution_duration"

	requestIDHeader = "X-Request-ID"
)

type loggerKey struct{}

// RequestLogger logs each request with a fresh request id and stores a
// request-scoped logger in the context.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			w.Header().Set(requestIDHeader, requestID)

			reqLogger := logger.With(zap.String(RequestIDKey, requestID))
			ctx := context.WithValue(r.Context(), loggerKey{}, reqLogger)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("processed incoming HTTP request",
				zap.String(MethodKey, r.Method),
				zap.String(URIKey, r.RequestURI),
				zap.Int(StatusCodeKey, ww.Status()),
				zap.Int(ResponseBodySizeBKey, ww.BytesWritten()),
				zap.Duration(ExecutionDurationKey, time.Since(start)),
			)
		})
	}
}

// LoggerFromContext returns the request-scoped logger, or fallback.
func LoggerFromContext(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if ctx == nil {
		return fallback
	}
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return fallback
}
