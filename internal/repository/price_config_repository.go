package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"listing-mapper-service/internal/models"
)

const (
	priceConfigCachePrefix = "price-config:"
	priceConfigCacheTTL    = 5 * time.Minute
)

// PriceConfigRepository handles shop price-sync configuration storage
// with an optional redis read-through cache.
type PriceConfigRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewPriceConfigRepository creates a new price config repository
func NewPriceConfigRepository(db *gorm.DB, redisClient *redis.Client) *PriceConfigRepository {
	return &PriceConfigRepository{db: db, redis: redisClient}
}

// GetByShopID returns the shop's price-sync configuration. A shop with
// no stored row gets the default configuration.
func (r *PriceConfigRepository) GetByShopID(ctx context.Context, shopID string) (*models.PriceSyncConfig, error) {
	cacheKey := priceConfigCachePrefix + shopID

	if r.redis != nil {
		if val, err := r.redis.Get(ctx, cacheKey).Result(); err == nil {
			var cfg models.PriceSyncConfig
			if err := json.Unmarshal([]byte(val), &cfg); err == nil {
				return &cfg, nil
			}
		}
	}

	var row models.ShopPriceConfig
	err := r.db.WithContext(ctx).Where("shop_id = ?", shopID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultPriceSyncConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := row.SyncConfig()
	if r.redis != nil {
		if data, err := json.Marshal(cfg); err == nil {
			r.redis.Set(ctx, cacheKey, data, priceConfigCacheTTL)
		}
	}
	return cfg, nil
}

// Upsert stores a shop's price-sync configuration and invalidates the
// cached entry.
func (r *PriceConfigRepository) Upsert(ctx context.Context, shopID string, cfg *models.PriceSyncConfig) (*models.ShopPriceConfig, error) {
	var row models.ShopPriceConfig
	err := r.db.WithContext(ctx).Where("shop_id = ?", shopID).First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row.ShopID = shopID
	row.Enabled = cfg.Enabled
	row.Source = cfg.Source
	row.UseDiscountedPrice = cfg.UseDiscountedPrice
	row.Tiers = cfg.Tiers
	row.DefaultMultiplier = cfg.DefaultMultiplier
	row.DefaultAdjustment = cfg.DefaultAdjustment

	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		r.redis.Del(ctx, priceConfigCachePrefix+shopID)
	}
	return &row, nil
}
