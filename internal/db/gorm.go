package db

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type GormDB struct {
	DB *gorm.DB
}

func NewGormDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// GetOneBy loads the first record (by primary key) matching every column in filter.
func (f *GormDB) GetOneBy(ctx context.Context, filter map[string]any, entity any) error {
	err := f.DB.WithContext(ctx).Where(filter).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %v: %w", columns(filter), err)
	}
	return nil
}

func (f *GormDB) GetAllBy(ctx context.Context, filter map[string]any, order string, entities any) error {
	tx := f.DB.WithContext(ctx).Where(filter)
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("getting records by %v: %w", columns(filter), err)
	}
	return nil
}

// UpdateWhere applies updates to the rows matching filter and scans the
// updated row back into entity. A zero count means nothing matched.
func (f *GormDB) UpdateWhere(ctx context.Context, entity any, filter map[string]any, updates map[string]any) (int64, error) {
	tx := f.DB.WithContext(ctx).
		Model(entity).
		Clauses(clause.Returning{}).
		Where(filter).
		Updates(updates)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records by %v: %w", columns(filter), tx.Error)
	}
	return tx.RowsAffected, nil
}

// AdvisoryLock blocks until the session-level postgres advisory lock for key
// is held. The lock lives on a dedicated connection that is handed back to the
// pool by release.
func (f *GormDB) AdvisoryLock(ctx context.Context, key int64) (func() error, error) {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db conn: %w", err)
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", key); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("advisory lock %d: %w", key, err)
	}

	release := func() error {
		// the caller's context may already be done
		_, unlockErr := conn.ExecContext(context.Background(), "SELECT pg_advisory_unlock($1)", key)
		closeErr := conn.Close()
		if unlockErr != nil {
			return fmt.Errorf("advisory unlock %d: %w", key, unlockErr)
		}
		return closeErr
	}

	return release, nil
}

func columns(filter map[string]any) []string {
	return slices.Sorted(maps.Keys(filter))
}
