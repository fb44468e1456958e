package v1alpha1

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/kubev2v/switch-inventory/api/v1alpha1"
	"github.com/kubev2v/switch-inventory/internal/handlers/v1alpha1/mappers"
	"github.com/kubev2v/switch-inventory/internal/handlers/validator"
	"github.com/kubev2v/switch-inventory/internal/service"
	"go.uber.org/zap"
)

const maxImportSize = 32 << 20

// (GET /api/v1/switches)
func (h *ServiceHandler) ListSwitches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := service.SwitchFilter{
		Search:      query.Get("search"),
		Status:      query.Get("status"),
		Criticality: query.Get("criticality"),
	}

	for param, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		raw := query.Get(param)
		if raw == "" {
			continue
		}
		val, err := strconv.Atoi(raw)
		if err != nil || val < 0 {
			_ = render.Render(w, r, newErrResponse(http.StatusBadRequest, fmt.Sprintf("invalid %s: %q", param, raw)))
			return
		}
		*dst = val
	}

	switches, err := h.switchSrv.ListSwitches(r.Context(), filter)
	if err != nil {
		h.internalError(w, r, "failed to list switches", err)
		return
	}

	render.JSON(w, r, mappers.SwitchListToApi(switches))
}

// (POST /api/v1/switches)
func (h *ServiceHandler) CreateSwitch(w http.ResponseWriter, r *http.Request) {
	form, ok := decodeSwitchForm(w, r)
	if !ok {
		return
	}

	sw, err := h.switchSrv.CreateSwitch(r.Context(), mappers.SwitchFormApi(form))
	if err != nil {
		switch err.(type) {
		case *service.ErrDuplicateSwitch:
			_ = render.Render(w, r, newErrResponse(http.StatusConflict, err.Error()))
		default:
			h.internalError(w, r, "failed to create switch", err)
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, mappers.SwitchToApi(*sw))
}

// (PUT /api/v1/switches/{id})
func (h *ServiceHandler) UpdateSwitch(w http.ResponseWriter, r *http.Request) {
	id, ok := switchID(w, r)
	if !ok {
		return
	}

	form, ok := decodeSwitchForm(w, r)
	if !ok {
		return
	}

	sw, err := h.switchSrv.UpdateSwitch(r.Context(), id, mappers.SwitchFormApi(form))
	if err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			_ = render.Render(w, r, newErrResponse(http.StatusNotFound, err.Error()))
		case *service.ErrDuplicateSwitch:
			_ = render.Render(w, r, newErrResponse(http.StatusConflict, err.Error()))
		default:
			h.internalError(w, r, "failed to update switch", err)
		}
		return
	}

	render.JSON(w, r, mappers.SwitchToApi(*sw))
}

// (GET /api/v1/switches/{id})
func (h *ServiceHandler) GetSwitch(w http.ResponseWriter, r *http.Request) {
	id, ok := switchID(w, r)
	if !ok {
		return
	}

	sw, err := h.switchSrv.GetSwitch(r.Context(), id)
	if err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			_ = render.Render(w, r, newErrResponse(http.StatusNotFound, err.Error()))
		default:
			h.internalError(w, r, "failed to get switch", err)
		}
		return
	}

	render.JSON(w, r, mappers.SwitchToApi(*sw))
}

// (DELETE /api/v1/switches/{id})
func (h *ServiceHandler) DeleteSwitch(w http.ResponseWriter, r *http.Request) {
	id, ok := switchID(w, r)
	if !ok {
		return
	}

	if err := h.switchSrv.DeleteSwitch(r.Context(), id); err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			_ = render.Render(w, r, newErrResponse(http.StatusNotFound, err.Error()))
		default:
			h.internalError(w, r, "failed to delete switch", err)
		}
		return
	}

	render.NoContent(w, r)
}

// (GET /api/v1/switches/stats)
func (h *ServiceHandler) GetSwitchStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.switchSrv.Stats(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to compute statistics", err)
		return
	}

	render.JSON(w, r, mappers.InventoryStatsToApi(stats))
}

// (POST /api/v1/switches/import)
func (h *ServiceHandler) ImportSwitches(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		_ = render.Render(w, r, newErrResponse(http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %s", err)))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		_ = render.Render(w, r, newErrResponse(http.StatusBadRequest, "missing file"))
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".xlsx" {
		_ = render.Render(w, r, newErrResponse(http.StatusBadRequest, fmt.Sprintf("unsupported file type %q: expected an .xlsx workbook", ext)))
		return
	}

	result, err := h.switchSrv.ImportSwitches(r.Context(), file)
	if err != nil {
		switch err.(type) {
		case *service.ErrFileCorrupted:
			_ = render.Render(w, r, newErrResponse(http.StatusBadRequest, err.Error()))
		default:
			h.internalError(w, r, "failed to import switches", err)
		}
		return
	}

	render.JSON(w, r, mappers.ImportResultToApi(result))
}

func (h *ServiceHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	zap.S().Named("handler").Errorw(msg, "error", err)
	_ = render.Render(w, r, newErrResponse(http.StatusInternalServerError, msg))
}

// decodeSwitchForm reads and validates the switch payload, answering 400 itself on failure.
func decodeSwitchForm(w http.ResponseWriter, r *http.Request) (v1alpha1.SwitchCreate, bool) {
	var form v1alpha1.SwitchCreate
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		_ = render.Render(w, r, newErrResponse(http.StatusBadRequest, fmt.Sprintf("invalid request body: %s", err)))
		return form, false
	}

	v := validator.NewValidator()
	v.Register(validator.NewSwitchValidationRules()...)

	if err := v.Struct(form); err != nil {
		_ = render.Render(w, r, newErrResponse(http.StatusBadRequest, err.Error()))
		return form, false
	}
	return form, true
}

func switchID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = render.Render(w, r, newErrResponse(http.StatusBadRequest, fmt.Sprintf("invalid switch id %q", chi.URLParam(r, "id"))))
		return uuid.Nil, false
	}
	return id, true
}
