package resolver

import (
	"context"
	"fmt"

	"github.com/kubev2v/switch-inventory/internal/store"
	"github.com/kubev2v/switch-inventory/internal/store/model"
	"k8s.io/utils/clock"
)

// ListCap is the largest result set that is enumerated record by record.
const ListCap = 10

// Result is the outcome of one execution.
type Result struct {
	Aggregation Aggregation
	// Total is the number of switches matching the filters.
	Total    int64
	Sum      float64
	Vendors  []model.VendorGroup
	Switches model.SwitchList
	// Truncated is set when a listing was requested but Total exceeds ListCap.
	Truncated bool
	// Empty is set when nothing matched and no aggregate was requested.
	Empty bool
}

type Executor struct {
	switches store.Switch
	clock    clock.PassiveClock
}

func NewExecutor(switches store.Switch, clk clock.PassiveClock) *Executor {
	return &Executor{switches: switches, clock: clk}
}

// Execute applies the filters and computes what agg asks for.
// Any store error aborts the execution and nothing partial is returned.
func (e *Executor) Execute(ctx context.Context, filters FilterSet, agg Aggregation) (*Result, error) {
	filter := e.buildFilter(filters)

	total, err := e.switches.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count switches: %w", err)
	}

	result := &Result{Aggregation: agg, Total: total}

	if agg.Sum {
		if result.Sum, err = e.switches.SumValue(ctx, filter); err != nil {
			return nil, fmt.Errorf("failed to sum acquisition values: %w", err)
		}
	}

	if agg.GroupByVendor {
		if result.Vendors, err = e.switches.GroupByVendor(ctx, filter); err != nil {
			return nil, fmt.Errorf("failed to group switches by vendor: %w", err)
		}
	}

	if agg.ShowList {
		switch {
		case total > ListCap:
			result.Truncated = true
		case total > 0:
			opts := store.NewSwitchQueryOptions().WithSortOrder(store.SortByName).WithLimit(ListCap)
			if result.Switches, err = e.switches.List(ctx, filter, opts); err != nil {
				return nil, fmt.Errorf("failed to list switches: %w", err)
			}
		}
	}

	result.Empty = total == 0 && !agg.Aggregates()

	return result, nil
}

// buildFilter ANDs one condition per constrained dimension. Token lists are ORed inside their dimension.
func (e *Executor) buildFilter(filters FilterSet) *store.SwitchQueryFilter {
	filter := store.NewSwitchQueryFilter().
		ByStatuses(filters.Statuses...).
		ByLocations(filters.Locations...).
		ByVendors(filters.Vendors...)

	if filters.WarrantyWindow {
		filter = filter.ByWarrantyBetween(model.WarrantyWindow(e.clock.Now()))
	}
	if filters.MinValue != nil {
		filter = filter.ByMinValue(*filters.MinValue)
	}
	if filters.FreePorts {
		filter = filter.WithFreeCopperPorts()
	}

	return filter
}
