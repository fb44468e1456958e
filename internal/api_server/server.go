package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kubev2v/switch-inventory/internal/config"
	handlers "github.com/kubev2v/switch-inventory/internal/handlers/v1alpha1"
	"github.com/kubev2v/switch-inventory/internal/resolver"
	"github.com/kubev2v/switch-inventory/internal/service"
	"github.com/kubev2v/switch-inventory/internal/store"
	"github.com/kubev2v/switch-inventory/pkg/metrics"
	"github.com/kubev2v/switch-inventory/pkg/middleware"
	"go.uber.org/zap"
	"k8s.io/utils/clock"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	store    store.Store
	listener net.Listener
}

// New returns a new instance of a switch-inventory server.
func New(
	cfg *config.Config,
	store store.Store,
	listener net.Listener,
) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		listener: listener,
	}
}

// NewRouter builds the api router with its middleware chain.
func NewRouter(cfg *config.Config, s store.Store, metricMiddleware *metrics.Middleware) *chi.Mux {
	router := chi.NewRouter()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Service.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	clk := clock.RealClock{}
	h := handlers.NewServiceHandler(
		service.NewQueryService(resolver.New(s, resolver.WithClock(clk))),
		service.NewSwitchService(s, clk),
	)
	h.RegisterRoutes(router)

	return router
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router := NewRouter(s.cfg, s.store, metricMiddleware)
	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
