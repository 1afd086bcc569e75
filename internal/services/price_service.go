package services

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"listing-mapper-service/internal/models"
)

// PriceConfigStore fetches a shop's price-sync configuration. A shop
// without stored configuration yields the documented default.
type PriceConfigStore interface {
	GetByShopID(ctx context.Context, shopID string) (*models.PriceSyncConfig, error)
}

// PriceService computes a tiered selling price from channel pricing
// data and a shop's price-sync configuration.
type PriceService struct {
	store  PriceConfigStore
	logger *logrus.Entry
}

// NewPriceService creates a new price service
func NewPriceService(store PriceConfigStore, logger *logrus.Logger) *PriceService {
	return &PriceService{
		store:  store,
		logger: logger.WithField("component", "price"),
	}
}

// CalculatePrice resolves the selling price for one product. Returns
// nil (attribute omitted) when price sync is disabled or no price is
// available from either the channel data or the resolve context.
func (s *PriceService) CalculatePrice(ctx context.Context, channel models.ChannelAttributes, rctx *models.ResolveContext) (interface{}, error) {
	cfg := models.DefaultPriceSyncConfig()
	if rctx.ShopID != "" {
		fetched, err := s.store.GetByShopID(ctx, rctx.ShopID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch price config for shop %s: %w", rctx.ShopID, err)
		}
		if fetched != nil {
			cfg = fetched
		}
	}

	if !cfg.Enabled {
		return nil, nil
	}

	price, _ := channelNumber(channel, "price")
	salePrice, _ := channelNumber(channel, "salePrice")
	shippingFee, _ := channelNumber(channel, "shippingFee")

	if cfg.Source == models.PriceSourceLocal && rctx.ProductPrice > 0 {
		price = rctx.ProductPrice
	}

	base := price
	if cfg.UseDiscountedPrice && salePrice > 0 {
		base = salePrice
	}
	if base == 0 && rctx.ProductPrice > 0 {
		base = rctx.ProductPrice
	}
	if base == 0 {
		return nil, nil
	}
	base += shippingFee

	multiplier := cfg.DefaultMultiplier
	adjustment := cfg.DefaultAdjustment
	for _, tier := range cfg.Tiers {
		if tier.Matches(base) {
			multiplier = tier.Multiplier
			adjustment = tier.Adjustment
			break
		}
	}

	return roundPrice(base*multiplier + adjustment), nil
}

func channelNumber(channel models.ChannelAttributes, key string) (float64, bool) {
	switch t := channel[key].(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		var f float64
		if _, err := fmt.Sscanf(t, "%f", &f); err == nil {
			return f, true
		}
	}
	return 0, false
}

func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
