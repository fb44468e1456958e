package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusInProduction        = "Em produção"
	StatusActive              = "Ativo"
	StatusInactive            = "Inativo"
	StatusMaintenance         = "Manutenção"
	StatusInactiveMaintenance = "Inativo (Manutenção)"

	CriticalityHigh = "Alta"
)

// ActiveStatuses are the statuses rendered as "running" across the inventory.
var ActiveStatuses = []string{StatusInProduction, StatusActive}

// InactiveStatuses are the statuses counted as down by the statistics.
var InactiveStatuses = []string{StatusInactive, StatusMaintenance}

type Switch struct {
	ID               uuid.UUID  `json:"id" gorm:"primaryKey;type:TEXT"`
	AssetID          string     `json:"asset_id" gorm:"uniqueIndex;not null"`
	Name             string     `json:"name" gorm:"index;not null"`
	Status           string     `json:"status" gorm:"index;not null"`
	Criticality      string     `json:"criticality"`
	Environment      string     `json:"environment"`
	Site             string     `json:"site"`
	Location         *string    `json:"location,omitempty"`
	Rack             *string    `json:"rack,omitempty"`
	Vendor           string     `json:"vendor" gorm:"index;not null"`
	Model            string     `json:"model"`
	SerialNumber     *string    `json:"serial_number,omitempty"`
	SwitchType       *string    `json:"switch_type,omitempty"`
	CopperPorts      *int       `json:"copper_ports,omitempty"`
	CopperPortsUsed  *int       `json:"copper_ports_used,omitempty"`
	FiberPorts       *int       `json:"fiber_ports,omitempty"`
	FiberPortsUsed   *int       `json:"fiber_ports_used,omitempty"`
	ManagementIP     *string    `json:"management_ip,omitempty"`
	Firmware         *string    `json:"firmware,omitempty"`
	AcquiredAt       *time.Time `json:"acquired_at,omitempty"`
	AcquisitionValue *float64   `json:"acquisition_value,omitempty"`
	WarrantyStart    *time.Time `json:"warranty_start,omitempty"`
	WarrantyEnd      *time.Time `json:"warranty_end,omitempty" gorm:"index"`
	Notes            *string    `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type SwitchList []Switch

func (s Switch) String() string {
	val, _ := json.Marshal(s)
	return string(val)
}

func NewSwitchFromID(id uuid.UUID) *Switch {
	return &Switch{ID: id}
}

// BeforeSave assigns an id to new rows and keeps every date column at UTC midnight,
// so range predicates on dates compare the same way on sqlite and postgres.
func (s *Switch) BeforeSave(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.AcquiredAt = TruncateDate(s.AcquiredAt)
	s.WarrantyStart = TruncateDate(s.WarrantyStart)
	s.WarrantyEnd = TruncateDate(s.WarrantyEnd)
	return nil
}

// IsActive reports whether the switch status belongs to the running family.
func (s Switch) IsActive() bool {
	for _, status := range ActiveStatuses {
		if s.Status == status {
			return true
		}
	}
	return false
}

// Date returns t truncated to its calendar day, in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TruncateDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := Date(*t)
	return &d
}

// VendorGroup is one row of the per-vendor aggregation.
type VendorGroup struct {
	Vendor string  `json:"vendor"`
	Count  int64   `json:"count"`
	Total  float64 `json:"total"`
}

// StatusGroup is one row of the per-status aggregation.
type StatusGroup struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
