package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PriceSource selects which price feeds the calculation
type PriceSource string

const (
	PriceSourceChannel PriceSource = "channel"
	PriceSourceLocal   PriceSource = "local"
)

// PriceTier is one half-open [MinPrice, MaxPrice) pricing band.
// A nil MaxPrice means unbounded. The first matching tier wins.
type PriceTier struct {
	MinPrice   float64  `json:"minPrice"`
	MaxPrice   *float64 `json:"maxPrice"`
	Multiplier float64  `json:"multiplier"`
	Adjustment float64  `json:"adjustment"`
}

// Matches reports whether basePrice falls inside the tier's band
func (t PriceTier) Matches(basePrice float64) bool {
	if basePrice < t.MinPrice {
		return false
	}
	return t.MaxPrice == nil || basePrice < *t.MaxPrice
}

// PriceTiers is an ordered tier list stored as a jsonb column
type PriceTiers []PriceTier

func (t PriceTiers) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *PriceTiers) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, t)
}

// PriceSyncConfig is one shop's price-sync configuration
type PriceSyncConfig struct {
	Enabled            bool        `json:"enabled"`
	Source             PriceSource `json:"source"`
	UseDiscountedPrice bool        `json:"useDiscountedPrice"`
	Tiers              PriceTiers  `json:"tiers"`
	DefaultMultiplier  float64     `json:"defaultMultiplier"`
	DefaultAdjustment  float64     `json:"defaultAdjustment"`
}

// DefaultPriceSyncConfig is used when a shop has no stored configuration
func DefaultPriceSyncConfig() *PriceSyncConfig {
	return &PriceSyncConfig{
		Enabled:           true,
		Source:            PriceSourceLocal,
		Tiers:             PriceTiers{},
		DefaultMultiplier: 1,
		DefaultAdjustment: 0,
	}
}

// ShopPriceConfig persists one shop's price-sync configuration
type ShopPriceConfig struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ShopID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_shop_price_configs_shop" json:"shopId"`

	Enabled            bool        `gorm:"default:true" json:"enabled"`
	Source             PriceSource `gorm:"type:varchar(20);default:'local'" json:"source"`
	UseDiscountedPrice bool        `gorm:"default:false" json:"useDiscountedPrice"`
	Tiers              PriceTiers  `gorm:"type:jsonb;default:'[]'" json:"tiers"`
	DefaultMultiplier  float64     `gorm:"type:decimal(10,4);default:1" json:"defaultMultiplier"`
	DefaultAdjustment  float64     `gorm:"type:decimal(10,2);default:0" json:"defaultAdjustment"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName specifies the table name for ShopPriceConfig
func (ShopPriceConfig) TableName() string {
	return "shop_price_configs"
}

// SyncConfig converts the stored row to its domain form
func (c *ShopPriceConfig) SyncConfig() *PriceSyncConfig {
	cfg := &PriceSyncConfig{
		Enabled:            c.Enabled,
		Source:             c.Source,
		UseDiscountedPrice: c.UseDiscountedPrice,
		Tiers:              c.Tiers,
		DefaultMultiplier:  c.DefaultMultiplier,
		DefaultAdjustment:  c.DefaultAdjustment,
	}
	if cfg.Source == "" {
		cfg.Source = PriceSourceLocal
	}
	if cfg.DefaultMultiplier == 0 {
		cfg.DefaultMultiplier = 1
	}
	return cfg
}
