package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/kubev2v/switch-inventory/api/v1alpha1"
	"github.com/kubev2v/switch-inventory/pkg/requestid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger returns a middleware logging every HTTP request with zap: once when it starts
// and once when it completes, at a level following the response status.
func Logger() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			// some middlewares rewrite the path
			path := r.URL.Path
			query := r.URL.RawQuery

			fields := []zapcore.Field{
				zap.String("request_id", requestid.FromRequest(r)),
				zap.String("method", r.Method),
				zap.String("path", path),
				zap.String("query", query),
				zap.String("ip", getClientIP(r)),
				zap.String("caller", r.Header.Get(v1alpha1.CallerIDHeader)),
				zap.String("user-agent", r.UserAgent()),
			}
			log := zap.S().Named("http").Desugar().With(fields...)
			log.Debug("Request started")

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			endFields := []zapcore.Field{
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.Int("response_bytes", ww.BytesWritten()),
			}

			msg := "Request completed"
			switch {
			case ww.Status() >= 500:
				log.Error(msg, endFields...)
			case ww.Status() >= 400:
				log.Warn(msg, endFields...)
			default:
				log.Info(msg, endFields...)
			}
		})
	}
}

// getClientIP returns the first address of X-Forwarded-For, then X-Real-IP, then the remote address.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}
