package mappers

import (
	"time"

	"github.com/kubev2v/switch-inventory/api/v1alpha1"
	"github.com/kubev2v/switch-inventory/internal/store/model"
)

const (
	defaultCriticality = "Média"
	defaultEnvironment = "Produção"
	defaultSite        = "Sede"
)

// SwitchFormApi converts a validated create payload into a switch.
func SwitchFormApi(form v1alpha1.SwitchCreate) model.Switch {
	sw := model.Switch{
		AssetID:          form.AssetId,
		Name:             form.Name,
		Status:           form.Status,
		Criticality:      valueOr(form.Criticality, defaultCriticality),
		Environment:      valueOr(form.Environment, defaultEnvironment),
		Site:             valueOr(form.Site, defaultSite),
		Location:         form.Location,
		Rack:             form.Rack,
		Vendor:           form.Vendor,
		Model:            form.Model,
		SerialNumber:     form.SerialNumber,
		SwitchType:       form.SwitchType,
		CopperPorts:      form.CopperPorts,
		CopperPortsUsed:  form.CopperPortsUsed,
		FiberPorts:       form.FiberPorts,
		FiberPortsUsed:   form.FiberPortsUsed,
		ManagementIP:     form.ManagementIp,
		Firmware:         form.Firmware,
		AcquisitionValue: form.AcquisitionValue,
		Notes:            form.Notes,
	}

	sw.AcquiredAt = parseDate(form.AcquiredAt)
	sw.WarrantyStart = parseDate(form.WarrantyStart)
	sw.WarrantyEnd = parseDate(form.WarrantyEnd)

	return sw
}

func valueOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// parseDate expects a value already checked by the validator.
func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(v1alpha1.DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
