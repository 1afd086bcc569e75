package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"listing-mapper-service/internal/models"
)

// UPCPoolRepository handles identifier pool database operations. Claim
// atomicity is enforced at the row level so concurrent publishes for
// different SKUs never receive the same code.
type UPCPoolRepository struct {
	db *gorm.DB
}

// NewUPCPoolRepository creates a new UPC pool repository
func NewUPCPoolRepository(db *gorm.DB) *UPCPoolRepository {
	return &UPCPoolRepository{db: db}
}

// FindAssigned returns the code already claimed by (sku, scope), or
// nil when the SKU has no assignment yet.
func (r *UPCPoolRepository) FindAssigned(ctx context.Context, sku, scope string) (*models.PoolCode, error) {
	var code models.PoolCode
	err := r.db.WithContext(ctx).
		Where("shop_scope = ? AND assigned_sku = ?", scope, sku).
		First(&code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &code, nil
}

// ClaimNext atomically assigns the next available code in the scope to
// the SKU. SKIP LOCKED lets concurrent claimants pass over each
// other's in-flight rows instead of serializing on them. Returns nil
// when the pool is exhausted.
func (r *UPCPoolRepository) ClaimNext(ctx context.Context, sku, scope string) (*models.PoolCode, error) {
	var claimed *models.PoolCode

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var code models.PoolCode
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("shop_scope = ? AND (assigned_sku IS NULL OR assigned_sku = '')", scope).
			Order("created_at ASC").
			First(&code).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		now := time.Now()
		code.AssignedSKU = sku
		code.AssignedAt = &now
		if err := tx.Save(&code).Error; err != nil {
			return err
		}
		claimed = &code
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

// ImportCodes inserts new codes into a scope's pool, skipping
// duplicates already present.
func (r *UPCPoolRepository) ImportCodes(ctx context.Context, scope string, codes []string) (int, error) {
	imported := 0
	for _, c := range codes {
		row := models.PoolCode{
			ShopScope:  scope,
			Code:       c,
			CodeLength: len(c),
		}
		result := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&row)
		if result.Error != nil {
			return imported, result.Error
		}
		imported += int(result.RowsAffected)
	}
	return imported, nil
}

// Stats returns available/assigned counts for a scope
func (r *UPCPoolRepository) Stats(ctx context.Context, scope string) (*models.PoolStats, error) {
	stats := &models.PoolStats{ShopScope: scope}

	if err := r.db.WithContext(ctx).Model(&models.PoolCode{}).
		Where("shop_scope = ? AND (assigned_sku IS NULL OR assigned_sku = '')", scope).
		Count(&stats.Available).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.PoolCode{}).
		Where("shop_scope = ? AND assigned_sku IS NOT NULL AND assigned_sku <> ''", scope).
		Count(&stats.Assigned).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// Release returns a SKU's code to the pool. Used when a listing is
// withdrawn and its identifier reclaimed.
func (r *UPCPoolRepository) Release(ctx context.Context, sku, scope string) error {
	return r.db.WithContext(ctx).Model(&models.PoolCode{}).
		Where("shop_scope = ? AND assigned_sku = ?", scope, sku).
		Updates(map[string]interface{}{"assigned_sku": "", "assigned_at": nil}).Error
}
