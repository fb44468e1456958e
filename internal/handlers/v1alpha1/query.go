package v1alpha1

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/kubev2v/switch-inventory/api/v1alpha1"
	"github.com/kubev2v/switch-inventory/internal/service"
	"go.uber.org/zap"
)

const statusMessage = "Sistema de consultas inteligentes ativo"

type queryReply struct {
	v1alpha1.QueryResponse
}

func (q queryReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type statusReply struct {
	v1alpha1.SystemStatus
}

func (s statusReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// (POST /api/v1/query)
func (h *ServiceHandler) Query(w http.ResponseWriter, r *http.Request) {
	var request v1alpha1.QueryRequest
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		_ = render.Render(w, r, newErrResponse(http.StatusBadRequest, fmt.Sprintf("invalid request body: %s", err)))
		return
	}

	answer, err := h.querySrv.Ask(r.Context(), request.Question, r.Header.Get(v1alpha1.CallerIDHeader))
	if err != nil {
		switch err.(type) {
		case *service.ErrEmptyQuestion:
			_ = render.Render(w, r, newErrResponse(http.StatusBadRequest, err.Error()))
		default:
			zap.S().Named("handler").Errorw("failed to answer question", "error", err)
			_ = render.Render(w, r, newErrResponse(http.StatusInternalServerError, fmt.Sprintf("Erro na consulta: %s", err)))
		}
		return
	}

	_ = render.Render(w, r, queryReply{v1alpha1.QueryResponse{
		Success:   true,
		Question:  answer.Question,
		Response:  answer.Response,
		Timestamp: answer.Timestamp,
	}})
}

// (GET /api/v1/stats)
func (h *ServiceHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := h.querySrv.Status()

	_ = render.Render(w, r, statusReply{v1alpha1.SystemStatus{
		Success:     true,
		Initialized: status.Initialized,
		LastUpdate:  status.StartedAt,
		Message:     statusMessage,
	}})
}
