package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"listing-mapper-service/internal/models"
)

func newTestPriceService(store PriceConfigStore) *PriceService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewPriceService(store, logger)
}

func tieredConfig() *models.PriceSyncConfig {
	max := 50.0
	return &models.PriceSyncConfig{
		Enabled: true,
		Source:  models.PriceSourceChannel,
		Tiers: models.PriceTiers{
			{MinPrice: 0, MaxPrice: &max, Multiplier: 1.5, Adjustment: 2},
			{MinPrice: 50, Multiplier: 1.2, Adjustment: 0},
		},
		DefaultMultiplier: 1,
	}
}

func TestPriceTierBoundary(t *testing.T) {
	store := new(MockPriceConfigStore)
	store.On("GetByShopID", mock.Anything, "shop-1").Return(tieredConfig(), nil)

	svc := newTestPriceService(store)
	rctx := &models.ResolveContext{ShopID: "shop-1"}

	// 49.99 falls in [0, 50): 49.99*1.5+2
	v, err := svc.CalculatePrice(context.Background(), models.ChannelAttributes{"price": 49.99}, rctx)
	assert.NoError(t, err)
	assert.InDelta(t, 76.985, v.(float64), 0.01)

	// 50.00 falls in [50, inf): 50*1.2 = 60
	v, err = svc.CalculatePrice(context.Background(), models.ChannelAttributes{"price": 50.0}, rctx)
	assert.NoError(t, err)
	assert.Equal(t, 60.0, v)
}

func TestPriceDefaultsWhenNoTierMatches(t *testing.T) {
	store := new(MockPriceConfigStore)
	store.On("GetByShopID", mock.Anything, "shop-1").Return(&models.PriceSyncConfig{
		Enabled:           true,
		Source:            models.PriceSourceChannel,
		Tiers:             models.PriceTiers{{MinPrice: 1000, Multiplier: 0.9}},
		DefaultMultiplier: 2,
		DefaultAdjustment: 1,
	}, nil)

	svc := newTestPriceService(store)

	v, err := svc.CalculatePrice(context.Background(), models.ChannelAttributes{"price": 10.0},
		&models.ResolveContext{ShopID: "shop-1"})
	assert.NoError(t, err)
	assert.Equal(t, 21.0, v)
}

func TestPriceDisabledReturnsNil(t *testing.T) {
	store := new(MockPriceConfigStore)
	store.On("GetByShopID", mock.Anything, "shop-1").Return(&models.PriceSyncConfig{Enabled: false}, nil)

	svc := newTestPriceService(store)

	v, err := svc.CalculatePrice(context.Background(), models.ChannelAttributes{"price": 10.0},
		&models.ResolveContext{ShopID: "shop-1"})
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestPriceDiscountedAndShipping(t *testing.T) {
	max := 1000.0
	store := new(MockPriceConfigStore)
	store.On("GetByShopID", mock.Anything, "shop-1").Return(&models.PriceSyncConfig{
		Enabled:            true,
		Source:             models.PriceSourceChannel,
		UseDiscountedPrice: true,
		Tiers:              models.PriceTiers{{MinPrice: 0, MaxPrice: &max, Multiplier: 1, Adjustment: 0}},
		DefaultMultiplier:  1,
	}, nil)

	svc := newTestPriceService(store)

	channel := models.ChannelAttributes{
		"price":       100.0,
		"salePrice":   80.0,
		"shippingFee": 9.99,
	}
	v, err := svc.CalculatePrice(context.Background(), channel, &models.ResolveContext{ShopID: "shop-1"})
	assert.NoError(t, err)
	assert.Equal(t, 89.99, v)
}

func TestPriceLocalSourcePrefersContextPrice(t *testing.T) {
	store := new(MockPriceConfigStore)
	store.On("GetByShopID", mock.Anything, "shop-1").Return(&models.PriceSyncConfig{
		Enabled:           true,
		Source:            models.PriceSourceLocal,
		DefaultMultiplier: 1,
	}, nil)

	svc := newTestPriceService(store)

	channel := models.ChannelAttributes{"price": 100.0}
	v, err := svc.CalculatePrice(context.Background(), channel,
		&models.ResolveContext{ShopID: "shop-1", ProductPrice: 75})
	assert.NoError(t, err)
	assert.Equal(t, 75.0, v)
}

func TestPriceNoBasePriceReturnsNil(t *testing.T) {
	store := new(MockPriceConfigStore)
	store.On("GetByShopID", mock.Anything, "shop-1").Return(tieredConfig(), nil)

	svc := newTestPriceService(store)

	v, err := svc.CalculatePrice(context.Background(), models.ChannelAttributes{},
		&models.ResolveContext{ShopID: "shop-1"})
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestPriceWithoutShopUsesDefaultConfig(t *testing.T) {
	svc := newTestPriceService(new(MockPriceConfigStore))

	v, err := svc.CalculatePrice(context.Background(), models.ChannelAttributes{"price": 25.0},
		&models.ResolveContext{})
	assert.NoError(t, err)
	assert.Equal(t, 25.0, v)
}

func TestPriceStoreErrorPropagates(t *testing.T) {
	store := new(MockPriceConfigStore)
	store.On("GetByShopID", mock.Anything, "shop-1").Return(nil, errors.New("db down"))

	svc := newTestPriceService(store)

	_, err := svc.CalculatePrice(context.Background(), models.ChannelAttributes{"price": 10.0},
		&models.ResolveContext{ShopID: "shop-1"})
	assert.Error(t, err)
}
