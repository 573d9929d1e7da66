// Package store persists the latest warehouse snapshot to Postgres so a
// restarted service can serve data immediately instead of waiting out the
// first (slow) warehouse reload.
package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"rvintel-service/internal/model"
)

const insertBatchSize = 1000

// Store wraps the snapshot tables.
type Store struct {
	db *gorm.DB
}

// New creates a Store and migrates its tables.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&DealershipRecord{}, &ProductRecord{}, &InventoryRecord{}, &SnapshotMeta{}); err != nil {
		return nil, fmt.Errorf("failed to run snapshot migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// ReplaceSnapshot atomically replaces the persisted snapshot with freshly
// fetched rows. Dimension rows without a surrogate key are not persisted
// (they can never resolve a join); fact rows are kept verbatim.
func (s *Store) ReplaceSnapshot(dealerships []model.DealershipRow, products []model.ProductRow, facts []model.InventoryFact, refreshedAt time.Time) error {
	dealershipRecords := make([]DealershipRecord, 0, len(dealerships))
	for _, row := range dealerships {
		if row.Skey == nil {
			continue
		}
		dealershipRecords = append(dealershipRecords, dealershipRecord(row))
	}
	productRecords := make([]ProductRecord, 0, len(products))
	for _, row := range products {
		if row.Skey == nil {
			continue
		}
		productRecords = append(productRecords, productRecord(row))
	}
	factRecords := make([]InventoryRecord, 0, len(facts))
	for _, fact := range facts {
		factRecords = append(factRecords, inventoryRecord(fact))
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []any{&DealershipRecord{}, &ProductRecord{}, &InventoryRecord{}, &SnapshotMeta{}} {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return err
			}
		}
		if len(dealershipRecords) > 0 {
			if err := tx.CreateInBatches(dealershipRecords, insertBatchSize).Error; err != nil {
				return err
			}
		}
		if len(productRecords) > 0 {
			if err := tx.CreateInBatches(productRecords, insertBatchSize).Error; err != nil {
				return err
			}
		}
		if len(factRecords) > 0 {
			if err := tx.CreateInBatches(factRecords, insertBatchSize).Error; err != nil {
				return err
			}
		}
		return tx.Create(&SnapshotMeta{RefreshedAt: refreshedAt}).Error
	})
}

// LoadSnapshot reads back the persisted snapshot. Returns ok=false when
// nothing has ever been persisted.
func (s *Store) LoadSnapshot() (dealerships []model.DealershipRow, products []model.ProductRow, facts []model.InventoryFact, refreshedAt time.Time, ok bool, err error) {
	var meta SnapshotMeta
	result := s.db.Order("refreshed_at DESC").First(&meta)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil, nil, time.Time{}, false, nil
		}
		return nil, nil, nil, time.Time{}, false, result.Error
	}

	var dealershipRecords []DealershipRecord
	if err := s.db.Find(&dealershipRecords).Error; err != nil {
		return nil, nil, nil, time.Time{}, false, err
	}
	var productRecords []ProductRecord
	if err := s.db.Find(&productRecords).Error; err != nil {
		return nil, nil, nil, time.Time{}, false, err
	}
	var factRecords []InventoryRecord
	if err := s.db.Find(&factRecords).Error; err != nil {
		return nil, nil, nil, time.Time{}, false, err
	}

	dealerships = make([]model.DealershipRow, 0, len(dealershipRecords))
	for _, r := range dealershipRecords {
		dealerships = append(dealerships, r.row())
	}
	products = make([]model.ProductRow, 0, len(productRecords))
	for _, r := range productRecords {
		products = append(products, r.row())
	}
	facts = make([]model.InventoryFact, 0, len(factRecords))
	for _, r := range factRecords {
		facts = append(facts, r.fact())
	}
	return dealerships, products, facts, meta.RefreshedAt, true, nil
}
