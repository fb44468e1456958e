package store

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

// SwitchQueryFilter narrows the switches table. Every method adds one condition
// and the conditions are ANDed together. Methods receiving a token list OR the
// tokens inside their own group.
type SwitchQueryFilter BaseQuerier

func NewSwitchQueryFilter() *SwitchQueryFilter {
	return &SwitchQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

// Empty reports whether the filter matches every switch.
func (f *SwitchQueryFilter) Empty() bool {
	return f == nil || len(f.QueryFn) == 0
}

func (f *SwitchQueryFilter) ByID(ids ...string) *SwitchQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id IN ?", ids)
	})
	return f
}

func (f *SwitchQueryFilter) ByAssetID(assetID string) *SwitchQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("asset_id = ?", assetID)
	})
	return f
}

// ByStatuses keeps the switches whose status is exactly one of statuses.
func (f *SwitchQueryFilter) ByStatuses(statuses ...string) *SwitchQueryFilter {
	if len(statuses) == 0 {
		return f
	}
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("status IN ?", statuses)
	})
	return f
}

func (f *SwitchQueryFilter) ByCriticality(criticality string) *SwitchQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("criticality = ?", criticality)
	})
	return f
}

// ByLocations keeps the switches whose site or detailed location contains any
// of the tokens, ignoring case.
func (f *SwitchQueryFilter) ByLocations(tokens ...string) *SwitchQueryFilter {
	if len(tokens) == 0 {
		return f
	}
	return f.anyLike(tokens, "site", "location")
}

// ByVendors keeps the switches whose vendor contains any of the tokens, ignoring case.
func (f *SwitchQueryFilter) ByVendors(tokens ...string) *SwitchQueryFilter {
	if len(tokens) == 0 {
		return f
	}
	return f.anyLike(tokens, "vendor")
}

// BySearch matches the term against the asset id, name and detailed location.
func (f *SwitchQueryFilter) BySearch(term string) *SwitchQueryFilter {
	if strings.TrimSpace(term) == "" {
		return f
	}
	return f.anyLike([]string{term}, "asset_id", "name", "location")
}

// ByWarrantyBetween keeps the switches whose warranty ends in [from, to], both inclusive.
func (f *SwitchQueryFilter) ByWarrantyBetween(from, to time.Time) *SwitchQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("warranty_end >= ? AND warranty_end <= ?", from, to)
	})
	return f
}

func (f *SwitchQueryFilter) ByMinValue(value float64) *SwitchQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("acquisition_value >= ?", value)
	})
	return f
}

// WithFreeCopperPorts keeps the switches having at least one unused copper port.
func (f *SwitchQueryFilter) WithFreeCopperPorts() *SwitchQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("copper_ports > copper_ports_used")
	})
	return f
}

func (f *SwitchQueryFilter) anyLike(tokens []string, columns ...string) *SwitchQueryFilter {
	conditions := make([]string, 0, len(tokens)*len(columns))
	args := make([]any, 0, len(tokens)*len(columns))
	for _, token := range tokens {
		pattern := "%" + strings.ToLower(token) + "%"
		for _, column := range columns {
			conditions = append(conditions, "LOWER("+column+") LIKE ?")
			args = append(args, pattern)
		}
	}
	query := "(" + strings.Join(conditions, " OR ") + ")"

	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where(query, args...)
	})
	return f
}

type SwitchQueryOptions BaseQuerier

func NewSwitchQueryOptions() *SwitchQueryOptions {
	return &SwitchQueryOptions{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (o *SwitchQueryOptions) WithSortOrder(sort SortOrder) *SwitchQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		switch sort {
		case SortByName:
			return tx.Order("name").Order("asset_id")
		case SortByAssetID:
			return tx.Order("asset_id")
		case SortByUpdatedTime:
			return tx.Order("updated_at")
		case SortByCreatedTime:
			return tx.Order("created_at")
		default:
			return tx
		}
	})
	return o
}

func (o *SwitchQueryOptions) WithLimit(limit int) *SwitchQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(limit)
	})
	return o
}

func (o *SwitchQueryOptions) WithOffset(offset int) *SwitchQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(offset)
	})
	return o
}
