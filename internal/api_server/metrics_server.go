package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kubev2v/switch-inventory/internal/store"
	"github.com/kubev2v/switch-inventory/pkg/log"
	"github.com/kubev2v/switch-inventory/pkg/metrics"
	"go.uber.org/zap"
)

const uniqueCallersResetPeriod = 7 * 24 * time.Hour

type MetricServer struct {
	bindAddress string
	httpServer  *http.Server
	listener    net.Listener
}

func NewMetricServer(bindAddress string, listener net.Listener, s store.Store) *MetricServer {
	router := chi.NewRouter()
	router.Use(log.ScrapeLogger(zap.L(), "metrics_http"))

	prometheusMetricHandler := metrics.NewPrometheusMetricsHandler(metrics.NewInventoryStatsCollector(s))
	router.Handle("/metrics", prometheusMetricHandler.Handler())

	return &MetricServer{
		bindAddress: bindAddress,
		listener:    listener,
		httpServer: &http.Server{
			Addr:    bindAddress,
			Handler: router,
		},
	}
}

func (m *MetricServer) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		m.httpServer.SetKeepAlivesEnabled(false)
		_ = m.httpServer.Shutdown(ctxTimeout)
		zap.S().Named("metrics_server").Info("metrics server terminated")
	}()

	ticker := time.NewTicker(uniqueCallersResetPeriod)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				metrics.UniqueCallers.Reset()
				zap.S().Named("metrics_server").Info("weekly unique callers metric reset")
			case <-ctx.Done():
				return
			}
		}
	}()

	zap.S().Named("metrics_server").Infof("serving metrics: %s", m.bindAddress)
	if err := m.httpServer.Serve(m.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
