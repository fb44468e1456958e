package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/kubev2v/switch-inventory/internal/importer"
	"github.com/kubev2v/switch-inventory/internal/store"
	"github.com/kubev2v/switch-inventory/internal/store/model"
	"github.com/kubev2v/switch-inventory/pkg/metrics"
	"go.uber.org/zap"
	"k8s.io/utils/clock"
)

type SwitchService struct {
	store store.Store
	clock clock.PassiveClock
}

func NewSwitchService(store store.Store, clk clock.PassiveClock) *SwitchService {
	return &SwitchService{store: store, clock: clk}
}

type SwitchFilter struct {
	Search      string
	Status      string
	Criticality string
	Limit       int
	Offset      int
}

func (s *SwitchService) ListSwitches(ctx context.Context, filter SwitchFilter) (model.SwitchList, error) {
	storeFilter := store.NewSwitchQueryFilter().BySearch(filter.Search)
	if filter.Status != "" {
		storeFilter = storeFilter.ByStatuses(filter.Status)
	}
	if filter.Criticality != "" {
		storeFilter = storeFilter.ByCriticality(filter.Criticality)
	}

	opts := store.NewSwitchQueryOptions().WithSortOrder(store.SortByName)
	if filter.Limit > 0 {
		opts = opts.WithLimit(filter.Limit)
	}
	if filter.Offset > 0 {
		opts = opts.WithOffset(filter.Offset)
	}

	return s.store.Switch().List(ctx, storeFilter, opts)
}

func (s *SwitchService) GetSwitch(ctx context.Context, id uuid.UUID) (*model.Switch, error) {
	sw, err := s.store.Switch().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrSwitchNotFound(id)
		}
		return nil, err
	}
	return sw, nil
}

func (s *SwitchService) CreateSwitch(ctx context.Context, sw model.Switch) (*model.Switch, error) {
	created, err := s.store.Switch().Create(ctx, sw)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, NewErrDuplicateSwitch(sw.AssetID)
		}
		return nil, err
	}

	zap.S().Named("switch_service").Infow("switch created", "id", created.ID, "asset_id", created.AssetID)
	return created, nil
}

// UpdateSwitch replaces the switch id with sw.
func (s *SwitchService) UpdateSwitch(ctx context.Context, id uuid.UUID, sw model.Switch) (*model.Switch, error) {
	updated, err := s.store.Switch().Update(ctx, id, sw)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRecordNotFound):
			return nil, NewErrSwitchNotFound(id)
		case errors.Is(err, store.ErrDuplicateKey):
			return nil, NewErrDuplicateSwitch(sw.AssetID)
		}
		return nil, err
	}

	zap.S().Named("switch_service").Infow("switch updated", "id", updated.ID, "asset_id", updated.AssetID)
	return updated, nil
}

func (s *SwitchService) DeleteSwitch(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Switch().Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewErrSwitchNotFound(id)
		}
		return err
	}
	return nil
}

func (s *SwitchService) Stats(ctx context.Context) (model.InventoryStats, error) {
	return s.store.Statistics(ctx, s.clock.Now())
}

// freeAssetID returns the first SW-NNNN id after *count that is not taken,
// moving *count past the taken ones.
func (s *SwitchService) freeAssetID(ctx context.Context, count *int64) (string, error) {
	for {
		id := fmt.Sprintf("SW-%04d", *count+1)
		taken, err := s.store.Switch().Count(ctx, store.NewSwitchQueryFilter().ByAssetID(id))
		if err != nil {
			return "", err
		}
		if taken == 0 {
			return id, nil
		}
		*count++
	}
}

// ImportResult counts the imported switches and lists the rejected rows.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// ImportSwitches loads the switches of an inventory workbook in a single transaction.
// Rows with an asset id already present are rejected; rows without one get the next free SW-NNNN id.
func (s *SwitchService) ImportSwitches(ctx context.Context, r io.Reader) (*ImportResult, error) {
	parsed, err := importer.Parse(r)
	if err != nil {
		return nil, NewErrImportFileCorrupted(err)
	}

	result := &ImportResult{Errors: []string{}}
	for _, rowErr := range parsed.Errors {
		result.Errors = append(result.Errors, rowErr.Error())
	}

	ctx, err = s.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}

	count, err := s.store.Switch().Count(ctx, store.NewSwitchQueryFilter())
	if err != nil {
		_, _ = store.Rollback(ctx)
		return nil, err
	}

	for _, row := range parsed.Rows {
		sw := row.Switch
		if sw.AssetID == "" {
			if sw.AssetID, err = s.freeAssetID(ctx, &count); err != nil {
				_, _ = store.Rollback(ctx)
				return nil, err
			}
		} else {
			exists, err := s.store.Switch().Count(ctx, store.NewSwitchQueryFilter().ByAssetID(sw.AssetID))
			if err != nil {
				_, _ = store.Rollback(ctx)
				return nil, err
			}
			if exists > 0 {
				result.Errors = append(result.Errors, fmt.Sprintf("line %d: %s", row.Line, NewErrDuplicateSwitch(sw.AssetID)))
				continue
			}
		}

		if _, err := s.store.Switch().Create(ctx, sw); err != nil {
			_, _ = store.Rollback(ctx)
			return nil, err
		}
		result.Imported++
		count++
	}

	store.Annotate(ctx, "imported", result.Imported, "rejected", len(result.Errors))
	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.IncreaseImportedSwitchesMetric(result.Imported, len(result.Errors))
	zap.S().Named("switch_service").Infow("inventory imported", "imported", result.Imported, "errors", len(result.Errors))

	return result, nil
}
