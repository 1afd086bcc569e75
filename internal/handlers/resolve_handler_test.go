package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"listing-mapper-service/internal/models"
	"listing-mapper-service/internal/services"
)

// stubPoolStore hands out a fixed code once, then reports exhaustion
type stubPoolStore struct {
	code     string
	assigned map[string]*models.PoolCode
}

func (s *stubPoolStore) FindAssigned(_ context.Context, sku, _ string) (*models.PoolCode, error) {
	return s.assigned[sku], nil
}

func (s *stubPoolStore) ClaimNext(_ context.Context, sku, scope string) (*models.PoolCode, error) {
	if s.code == "" {
		return nil, nil
	}
	pc := &models.PoolCode{Code: s.code, ShopScope: scope, AssignedSKU: sku}
	if s.assigned == nil {
		s.assigned = map[string]*models.PoolCode{}
	}
	s.assigned[sku] = pc
	s.code = ""
	return pc, nil
}

type stubPriceStore struct{}

func (stubPriceStore) GetByShopID(_ context.Context, _ string) (*models.PriceSyncConfig, error) {
	return models.DefaultPriceSyncConfig(), nil
}

func newTestRouter(poolStore *stubPoolStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	upcService := services.NewUPCService(poolStore, logger)
	priceService := services.NewPriceService(stubPriceStore{}, logger)
	intlService := services.NewIntlService(nil, logger)
	resolverService := services.NewResolverService(upcService, priceService, logger)

	handler := NewResolveHandler(resolverService, intlService)
	router := gin.New()
	router.POST("/api/v1/listings/resolve", handler.Resolve)
	return router
}

func postResolve(t *testing.T, router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/listings/resolve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestResolveEndpoint(t *testing.T) {
	router := newTestRouter(&stubPoolStore{code: "012345678905"})

	w := postResolve(t, router, map[string]interface{}{
		"rules": []map[string]interface{}{
			{"attributeId": "brand", "attributeName": "Brand", "mappingType": "default_value", "value": "HomeCraft"},
			{"attributeId": "productName", "attributeName": "Product Name", "mappingType": "channel_data", "value": "title"},
			{"attributeId": "upc", "attributeName": "UPC", "mappingType": "upc_pool"},
		},
		"channelAttributes": map[string]interface{}{
			"title": "Modern Farmhouse Coffee Table",
		},
		"context": map[string]interface{}{
			"productSku": "SKU-100",
			"shopId":     "shop-1",
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.ResolveResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "HomeCraft", result.Attributes["brand"])
	assert.Equal(t, "Modern Farmhouse Coffee Table", result.Attributes["productName"])
	upc, ok := result.Attributes["upc"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "UPC", upc["productIdType"])
	assert.Equal(t, "012345678905", upc["productId"])
}

func TestResolveEndpointMarketReshape(t *testing.T) {
	router := newTestRouter(&stubPoolStore{})

	w := postResolve(t, router, map[string]interface{}{
		"rules": []map[string]interface{}{
			{"attributeId": "productName", "attributeName": "Product Name", "mappingType": "channel_data", "value": "title"},
		},
		"channelAttributes": map[string]interface{}{"title": "Desk"},
		"market":            "CA",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.ResolveResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, map[string]interface{}{"en": "Desk"}, result.Attributes["productName"])
}

func TestResolveEndpointRejectsMissingRules(t *testing.T) {
	router := newTestRouter(&stubPoolStore{})

	w := postResolve(t, router, map[string]interface{}{
		"channelAttributes": map[string]interface{}{"title": "Desk"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
