package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/kubev2v/switch-inventory/api/v1alpha1"
	"github.com/kubev2v/switch-inventory/internal/service"
)

type ServiceHandler struct {
	querySrv  *service.QueryService
	switchSrv *service.SwitchService
}

func NewServiceHandler(querySrv *service.QueryService, switchSrv *service.SwitchService) *ServiceHandler {
	return &ServiceHandler{
		querySrv:  querySrv,
		switchSrv: switchSrv,
	}
}

// RegisterRoutes mounts the health check and the /api/v1 routes on router.
func (h *ServiceHandler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.Health)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/query", h.Query)
		r.Get("/stats", h.GetStatus)

		r.Route("/switches", func(r chi.Router) {
			r.Get("/", h.ListSwitches)
			r.Post("/", h.CreateSwitch)
			r.Get("/stats", h.GetSwitchStats)
			r.Post("/import", h.ImportSwitches)
			r.Get("/{id}", h.GetSwitch)
			r.Put("/{id}", h.UpdateSwitch)
			r.Delete("/{id}", h.DeleteSwitch)
		})
	})
}

// (GET /health)
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

type errResponse struct {
	v1alpha1.Error
	HTTPStatusCode int `json:"-"`
}

func (e *errResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func newErrResponse(code int, message string) render.Renderer {
	return &errResponse{
		Error:          v1alpha1.Error{Success: false, Message: message},
		HTTPStatusCode: code,
	}
}
