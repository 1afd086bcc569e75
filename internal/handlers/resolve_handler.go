package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"listing-mapper-service/internal/models"
	"listing-mapper-service/internal/services"
)

// ResolveHandler handles attribute resolution requests
type ResolveHandler struct {
	resolverService *services.ResolverService
	intlService     *services.IntlService
}

// NewResolveHandler creates a new resolve handler
func NewResolveHandler(resolverService *services.ResolverService, intlService *services.IntlService) *ResolveHandler {
	return &ResolveHandler{
		resolverService: resolverService,
		intlService:     intlService,
	}
}

// ResolveRequest is the payload for a resolution run
type ResolveRequest struct {
	Rules             models.RulesConfig       `json:"rules" binding:"required"`
	ChannelAttributes models.ChannelAttributes `json:"channelAttributes"`
	Context           models.ResolveContext    `json:"context"`
	Market            string                   `json:"market"`
}

// Resolve runs the mapping rules against the channel attributes
func (h *ResolveHandler) Resolve(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Context.ShopID == "" {
		req.Context.ShopID = c.GetString("shopId")
	}

	result := h.resolverService.ResolveAttributes(c.Request.Context(), req.Rules, req.ChannelAttributes, &req.Context)
	result.Attributes = h.intlService.Reshape(c.Request.Context(), result.Attributes, req.Market)

	c.JSON(http.StatusOK, result)
}
