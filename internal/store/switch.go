package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kubev2v/switch-inventory/internal/store/model"
	"gorm.io/gorm"
)

type SortOrder int

const (
	Unsorted SortOrder = iota
	SortByName
	SortByAssetID
	SortByUpdatedTime
	SortByCreatedTime
)

type Switch interface {
	List(ctx context.Context, filter *SwitchQueryFilter, opts *SwitchQueryOptions) (model.SwitchList, error)
	Count(ctx context.Context, filter *SwitchQueryFilter) (int64, error)
	SumValue(ctx context.Context, filter *SwitchQueryFilter) (float64, error)
	GroupByVendor(ctx context.Context, filter *SwitchQueryFilter) ([]model.VendorGroup, error)
	GroupByStatus(ctx context.Context, filter *SwitchQueryFilter) ([]model.StatusGroup, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Switch, error)
	Create(ctx context.Context, sw model.Switch) (*model.Switch, error)
	Update(ctx context.Context, id uuid.UUID, sw model.Switch) (*model.Switch, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	InitialMigration(ctx context.Context) error
}

type SwitchStore struct {
	db *gorm.DB
}

// Make sure we conform to Switch interface
var _ Switch = (*SwitchStore)(nil)

func NewSwitchStore(db *gorm.DB) Switch {
	return &SwitchStore{db: db}
}

func (s *SwitchStore) InitialMigration(ctx context.Context) error {
	return s.getDB(ctx).AutoMigrate(&model.Switch{})
}

// List lists the switches matching filter.
func (s *SwitchStore) List(ctx context.Context, filter *SwitchQueryFilter, opts *SwitchQueryOptions) (model.SwitchList, error) {
	var switches model.SwitchList
	tx := s.filtered(ctx, filter)

	if opts != nil {
		for _, fn := range opts.QueryFn {
			tx = fn(tx)
		}
	}

	if err := tx.Find(&switches).Error; err != nil {
		return nil, err
	}

	return switches, nil
}

// Count returns the number of switches matching filter.
func (s *SwitchStore) Count(ctx context.Context, filter *SwitchQueryFilter) (int64, error) {
	var count int64
	if err := s.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumValue returns the sum of the acquisition values of the switches matching filter.
// Switches without a value count as zero.
func (s *SwitchStore) SumValue(ctx context.Context, filter *SwitchQueryFilter) (float64, error) {
	var total float64
	if err := s.filtered(ctx, filter).Select("COALESCE(SUM(acquisition_value), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GroupByVendor counts and sums the switches matching filter per vendor,
// ordered by count descending then vendor name.
func (s *SwitchStore) GroupByVendor(ctx context.Context, filter *SwitchQueryFilter) ([]model.VendorGroup, error) {
	groups := []model.VendorGroup{}
	err := s.filtered(ctx, filter).
		Select("vendor, COUNT(*) AS count, COALESCE(SUM(acquisition_value), 0) AS total").
		Group("vendor").
		Order("count DESC").
		Order("vendor ASC").
		Scan(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *SwitchStore) GroupByStatus(ctx context.Context, filter *SwitchQueryFilter) ([]model.StatusGroup, error) {
	groups := []model.StatusGroup{}
	err := s.filtered(ctx, filter).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Order("status ASC").
		Scan(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Get returns a switch based on its id.
func (s *SwitchStore) Get(ctx context.Context, id uuid.UUID) (*model.Switch, error) {
	sw := model.NewSwitchFromID(id)

	if err := s.getDB(ctx).WithContext(ctx).First(sw).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return sw, nil
}

// Create creates a switch.
func (s *SwitchStore) Create(ctx context.Context, sw model.Switch) (*model.Switch, error) {
	if err := s.getDB(ctx).WithContext(ctx).Create(&sw).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}

	return &sw, nil
}

// Update replaces every column of the switch id but its creation time.
func (s *SwitchStore) Update(ctx context.Context, id uuid.UUID, sw model.Switch) (*model.Switch, error) {
	sw.ID = id
	result := s.getDB(ctx).WithContext(ctx).Model(&sw).Select("*").Omit("id", "created_at").Updates(&sw)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	return s.Get(ctx, id)
}

func (s *SwitchStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.getDB(ctx).WithContext(ctx).Delete(model.NewSwitchFromID(id))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *SwitchStore) DeleteAll(ctx context.Context) error {
	return s.getDB(ctx).WithContext(ctx).Exec("DELETE FROM switches").Error
}

func (s *SwitchStore) filtered(ctx context.Context, filter *SwitchQueryFilter) *gorm.DB {
	tx := s.getDB(ctx).WithContext(ctx).Model(&model.Switch{})

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	return tx
}

func (s *SwitchStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db
}
