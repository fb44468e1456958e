package store

import (
	"context"
	"time"

	"github.com/kubev2v/switch-inventory/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Switch() Switch
	InitialMigration(ctx context.Context) error
	Seed(ctx context.Context) error
	Statistics(ctx context.Context, now time.Time) (model.InventoryStats, error)
	Close() error
}

type DataStore struct {
	db       *gorm.DB
	switches Switch
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		db:       db,
		switches: NewSwitchStore(db),
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) Switch() Switch {
	return s.switches
}

func (s *DataStore) InitialMigration(ctx context.Context) error {
	ctx, err := s.NewTransactionContext(ctx)
	if err != nil {
		return err
	}

	if err := s.Switch().InitialMigration(ctx); err != nil {
		_, _ = Rollback(ctx)
		return err
	}

	_, err = Commit(ctx)
	return err
}

// Statistics computes the dashboard figures over the whole inventory.
// The warranty figure counts the switches whose warranty ends within 30 days of now.
func (s *DataStore) Statistics(ctx context.Context, now time.Time) (model.InventoryStats, error) {
	var (
		stats model.InventoryStats
		err   error
	)

	if stats.Total, err = s.Switch().Count(ctx, NewSwitchQueryFilter()); err != nil {
		return model.InventoryStats{}, err
	}
	if stats.Active, err = s.Switch().Count(ctx, NewSwitchQueryFilter().ByStatuses(model.ActiveStatuses...)); err != nil {
		return model.InventoryStats{}, err
	}
	if stats.Inactive, err = s.Switch().Count(ctx, NewSwitchQueryFilter().ByStatuses(model.InactiveStatuses...)); err != nil {
		return model.InventoryStats{}, err
	}
	if stats.HighCriticality, err = s.Switch().Count(ctx, NewSwitchQueryFilter().ByCriticality(model.CriticalityHigh)); err != nil {
		return model.InventoryStats{}, err
	}

	from, to := model.WarrantyWindow(now)
	if stats.WarrantyExpiring, err = s.Switch().Count(ctx, NewSwitchQueryFilter().ByWarrantyBetween(from, to)); err != nil {
		return model.InventoryStats{}, err
	}
	if stats.TotalValue, err = s.Switch().SumValue(ctx, NewSwitchQueryFilter()); err != nil {
		return model.InventoryStats{}, err
	}
	if stats.ByVendor, err = s.Switch().GroupByVendor(ctx, NewSwitchQueryFilter()); err != nil {
		return model.InventoryStats{}, err
	}
	if stats.ByStatus, err = s.Switch().GroupByStatus(ctx, NewSwitchQueryFilter()); err != nil {
		return model.InventoryStats{}, err
	}

	return stats, nil
}

// Seed loads the demo inventory. Switches already present (same asset id) are left untouched.
func (s *DataStore) Seed(ctx context.Context) error {
	tx, err := newTransaction(s.db.WithContext(ctx))
	if err != nil {
		return err
	}

	switches := GenerateDefaultInventory()
	if err := tx.tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "asset_id"}},
		DoNothing: true,
	}).Create(&switches).Error; err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
