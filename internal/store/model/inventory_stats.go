package model

import "time"

// WarrantyWindowDays is the horizon, in days, of the "warranty expiring soon" figures.
const WarrantyWindowDays = 30

type InventoryStats struct {
	Total            int64         `json:"total"`
	Active           int64         `json:"active"`
	Inactive         int64         `json:"inactive"`
	HighCriticality  int64         `json:"high_criticality"`
	WarrantyExpiring int64         `json:"warranty_expiring"`
	TotalValue       float64       `json:"total_value"`
	ByVendor         []VendorGroup `json:"by_vendor"`
	ByStatus         []StatusGroup `json:"by_status"`
}

// WarrantyWindow returns the inclusive date range [today, today+30 days] relative to now.
func WarrantyWindow(now time.Time) (time.Time, time.Time) {
	today := Date(now)
	return today, today.AddDate(0, 0, WarrantyWindowDays)
}

// DaysUntil returns the number of whole days between the dates of now and t.
func DaysUntil(now, t time.Time) int {
	return int(Date(t).Sub(Date(now)).Hours() / 24)
}
