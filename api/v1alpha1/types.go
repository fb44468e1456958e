// Package v1alpha1 holds the types exchanged by the switch inventory HTTP api.
package v1alpha1

import "time"

// DateLayout is the layout of every date field of the api.
const DateLayout = "2006-01-02"

// CallerIDHeader carries the id of the caller asking a question.
const CallerIDHeader = "X-User-Id"

type Error struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type QueryRequest struct {
	Question string `json:"question"`
}

type QueryResponse struct {
	Success   bool      `json:"success"`
	Question  string    `json:"question"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

type SystemStatus struct {
	Success     bool      `json:"success"`
	Initialized bool      `json:"initialized"`
	LastUpdate  time.Time `json:"last_update"`
	Message     string    `json:"message"`
}

type Switch struct {
	Id               string   `json:"id"`
	AssetId          string   `json:"asset_id"`
	Name             string   `json:"name"`
	Status           string   `json:"status"`
	Criticality      string   `json:"criticality"`
	Environment      string   `json:"environment"`
	Site             string   `json:"site"`
	Location         *string  `json:"location,omitempty"`
	Rack             *string  `json:"rack,omitempty"`
	Vendor           string   `json:"vendor"`
	Model            string   `json:"model"`
	SerialNumber     *string  `json:"serial_number,omitempty"`
	SwitchType       *string  `json:"switch_type,omitempty"`
	CopperPorts      *int     `json:"copper_ports,omitempty"`
	CopperPortsUsed  *int     `json:"copper_ports_used,omitempty"`
	FiberPorts       *int     `json:"fiber_ports,omitempty"`
	FiberPortsUsed   *int     `json:"fiber_ports_used,omitempty"`
	ManagementIp     *string  `json:"management_ip,omitempty"`
	Firmware         *string  `json:"firmware,omitempty"`
	AcquiredAt       *string  `json:"acquired_at,omitempty"`
	AcquisitionValue *float64 `json:"acquisition_value,omitempty"`
	WarrantyStart    *string  `json:"warranty_start,omitempty"`
	WarrantyEnd      *string  `json:"warranty_end,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

type SwitchList []Switch

// SwitchCreate is the payload of POST /api/v1/switches and PUT /api/v1/switches/{id}.
type SwitchCreate struct {
	AssetId          string   `json:"asset_id" validate:"required,max=32,asset_id"`
	Name             string   `json:"name" validate:"required,max=100,switch_name"`
	Status           string   `json:"status" validate:"required,switch_status"`
	Criticality      string   `json:"criticality" validate:"criticality"`
	Environment      string   `json:"environment" validate:"max=50"`
	Site             string   `json:"site" validate:"max=100"`
	Location         *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Rack             *string  `json:"rack,omitempty" validate:"omitempty,max=50"`
	Vendor           string   `json:"vendor" validate:"required,max=50"`
	Model            string   `json:"model" validate:"max=100"`
	SerialNumber     *string  `json:"serial_number,omitempty" validate:"omitempty,max=100"`
	SwitchType       *string  `json:"switch_type,omitempty" validate:"omitempty,max=50"`
	CopperPorts      *int     `json:"copper_ports,omitempty" validate:"omitempty,gte=0"`
	CopperPortsUsed  *int     `json:"copper_ports_used,omitempty" validate:"omitempty,gte=0,ports_used=CopperPorts"`
	FiberPorts       *int     `json:"fiber_ports,omitempty" validate:"omitempty,gte=0"`
	FiberPortsUsed   *int     `json:"fiber_ports_used,omitempty" validate:"omitempty,gte=0,ports_used=FiberPorts"`
	ManagementIp     *string  `json:"management_ip,omitempty" validate:"omitempty,ip"`
	Firmware         *string  `json:"firmware,omitempty" validate:"omitempty,max=100"`
	AcquiredAt       *string  `json:"acquired_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AcquisitionValue *float64 `json:"acquisition_value,omitempty" validate:"omitempty,gte=0"`
	WarrantyStart    *string  `json:"warranty_start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WarrantyEnd      *string  `json:"warranty_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes            *string  `json:"notes,omitempty"`
}

type VendorCount struct {
	Vendor string  `json:"vendor"`
	Count  int64   `json:"count"`
	Total  float64 `json:"total"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type InventoryStats struct {
	Total            int64         `json:"total"`
	Active           int64         `json:"active"`
	Inactive         int64         `json:"inactive"`
	HighCriticality  int64         `json:"high_criticality"`
	WarrantyExpiring int64         `json:"warranty_expiring"`
	TotalValue       float64       `json:"total_value"`
	ByVendor         []VendorCount `json:"by_vendor"`
	ByStatus         []StatusCount `json:"by_status"`
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}
