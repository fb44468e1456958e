package log

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ScrapeLogger logs the requests served by an auxiliary listener such as /metrics.
// Successful requests are logged at debug level so periodic scrapes stay out of the info stream.
func ScrapeLogger(l *zap.Logger, name string) func(next http.Handler) http.Handler {
	if l == nil {
		panic("log.ScrapeLogger received a nil *zap.Logger")
	}

	logger := l.Named(name)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				fields := []zap.Field{
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.Int("status", ww.Status()),
					zap.Int("response_bytes", ww.BytesWritten()),
					zap.Duration("latency", time.Since(start)),
				}

				switch {
				case ww.Status() >= 500:
					logger.Error("request failed", fields...)
				case ww.Status() >= 400:
					logger.Warn("request rejected", fields...)
				default:
					logger.Debug("request served", fields...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
