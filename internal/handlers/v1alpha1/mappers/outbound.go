package mappers

import (
	"time"

	"github.com/kubev2v/switch-inventory/api/v1alpha1"
	"github.com/kubev2v/switch-inventory/internal/service"
	"github.com/kubev2v/switch-inventory/internal/store/model"
)

func SwitchToApi(sw model.Switch) v1alpha1.Switch {
	return v1alpha1.Switch{
		Id:               sw.ID.String(),
		AssetId:          sw.AssetID,
		Name:             sw.Name,
		Status:           sw.Status,
		Criticality:      sw.Criticality,
		Environment:      sw.Environment,
		Site:             sw.Site,
		Location:         sw.Location,
		Rack:             sw.Rack,
		Vendor:           sw.Vendor,
		Model:            sw.Model,
		SerialNumber:     sw.SerialNumber,
		SwitchType:       sw.SwitchType,
		CopperPorts:      sw.CopperPorts,
		CopperPortsUsed:  sw.CopperPortsUsed,
		FiberPorts:       sw.FiberPorts,
		FiberPortsUsed:   sw.FiberPortsUsed,
		ManagementIp:     sw.ManagementIP,
		Firmware:         sw.Firmware,
		AcquiredAt:       formatDate(sw.AcquiredAt),
		AcquisitionValue: sw.AcquisitionValue,
		WarrantyStart:    formatDate(sw.WarrantyStart),
		WarrantyEnd:      formatDate(sw.WarrantyEnd),
		Notes:            sw.Notes,
	}
}

func SwitchListToApi(switches model.SwitchList) v1alpha1.SwitchList {
	list := make(v1alpha1.SwitchList, 0, len(switches))
	for _, sw := range switches {
		list = append(list, SwitchToApi(sw))
	}
	return list
}

func InventoryStatsToApi(stats model.InventoryStats) v1alpha1.InventoryStats {
	out := v1alpha1.InventoryStats{
		Total:            stats.Total,
		Active:           stats.Active,
		Inactive:         stats.Inactive,
		HighCriticality:  stats.HighCriticality,
		WarrantyExpiring: stats.WarrantyExpiring,
		TotalValue:       stats.TotalValue,
		ByVendor:         make([]v1alpha1.VendorCount, 0, len(stats.ByVendor)),
		ByStatus:         make([]v1alpha1.StatusCount, 0, len(stats.ByStatus)),
	}
	for _, g := range stats.ByVendor {
		out.ByVendor = append(out.ByVendor, v1alpha1.VendorCount{Vendor: g.Vendor, Count: g.Count, Total: g.Total})
	}
	for _, g := range stats.ByStatus {
		out.ByStatus = append(out.ByStatus, v1alpha1.StatusCount{Status: g.Status, Count: g.Count})
	}
	return out
}

func ImportResultToApi(result *service.ImportResult) v1alpha1.ImportResult {
	return v1alpha1.ImportResult{Imported: result.Imported, Errors: result.Errors}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(v1alpha1.DateLayout)
	return &s
}
