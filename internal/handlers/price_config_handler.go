package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"listing-mapper-service/internal/models"
	"listing-mapper-service/internal/repository"
)

// PriceConfigHandler handles shop price configuration HTTP requests
type PriceConfigHandler struct {
	priceConfigRepo *repository.PriceConfigRepository
}

// NewPriceConfigHandler creates a new price config handler
func NewPriceConfigHandler(priceConfigRepo *repository.PriceConfigRepository) *PriceConfigHandler {
	return &PriceConfigHandler{
		priceConfigRepo: priceConfigRepo,
	}
}

// Get returns a shop's price-sync configuration, defaults included
func (h *PriceConfigHandler) Get(c *gin.Context) {
	shopID := c.Param("shopId")
	if shopID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shop ID is required"})
		return
	}

	cfg, err := h.priceConfigRepo.GetByShopID(c.Request.Context(), shopID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shopId": shopID,
		"config": cfg,
	})
}

// Put replaces a shop's price-sync configuration
func (h *PriceConfigHandler) Put(c *gin.Context) {
	shopID := c.Param("shopId")
	if shopID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shop ID is required"})
		return
	}

	var cfg models.PriceSyncConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if cfg.Source == "" {
		cfg.Source = models.PriceSourceLocal
	}
	if cfg.Source != models.PriceSourceChannel && cfg.Source != models.PriceSourceLocal {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source must be 'channel' or 'local'"})
		return
	}
	for _, tier := range cfg.Tiers {
		if tier.MaxPrice != nil && *tier.MaxPrice <= tier.MinPrice {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tier maxPrice must be greater than minPrice"})
			return
		}
	}
	if cfg.DefaultMultiplier == 0 {
		cfg.DefaultMultiplier = 1
	}

	stored, err := h.priceConfigRepo.Upsert(c.Request.Context(), shopID, &cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stored)
}
