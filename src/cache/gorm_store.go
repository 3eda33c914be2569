package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	logger "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cotmonitor/src/model"
)

// snapshotRow is the persisted cache entry. UpdatedAt is the staleness
// clock; gorm maintains it on every upsert.
type snapshotRow struct {
	Symbol    string `gorm:"primaryKey;size:16"`
	Payload   []byte
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string { return "cot_snapshots" }

// GormStore keeps snapshots in a relational table, one row per symbol.
type GormStore struct {
	db     *gorm.DB
	maxAge time.Duration
}

func newGormStore(cfg *Config, maxAge time.Duration) (*GormStore, error) {
	var dialector gorm.Dialector
	switch cfg.Backend {
	case "postgres":
		dialector = postgres.Open(cfg.PostgresDSN)
	default:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create cache dir: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("migrate cache db: %w", err)
	}

	logger.WithFields(logger.Fields{
		"backend": cfg.Backend,
		"maxAge":  maxAge,
	}).Info("Snapshot cache initialized")

	return &GormStore{db: db, maxAge: maxAge}, nil
}

// NewGormStoreWithDB wires an existing gorm DB, used by tests.
func NewGormStoreWithDB(db *gorm.DB, maxAge time.Duration) *GormStore {
	return &GormStore{db: db, maxAge: maxAge}
}

func (s *GormStore) Get(ctx context.Context, symbol string) (*model.Snapshot, bool) {
	var row snapshotRow
	err := s.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Take(&row).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.WithError(err).WithField("symbol", symbol).Warn("Cache read failed")
		}
		return nil, false
	}

	if time.Since(row.UpdatedAt) >= s.maxAge {
		return nil, false
	}

	var snap model.Snapshot
	if err := json.Unmarshal(row.Payload, &snap); err != nil {
		logger.WithError(err).WithField("symbol", symbol).Warn("Cache entry corrupt")
		return nil, false
	}
	return &snap, true
}

func (s *GormStore) Put(ctx context.Context, symbol string, snap *model.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	row := snapshotRow{
		Symbol:    symbol,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
}
