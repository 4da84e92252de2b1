package handler

import (
	"net/http"

	"gamerank/internal/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	client *catalog.Client
}

func NewCatalogHandler(client *catalog.Client) *CatalogHandler {
	return &CatalogHandler{client: client}
}

// RegisterRoutes registers the unified external-catalog endpoint
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/unified", h.Unified)
}

// Unified merges both external catalogs filtered by platform. Source
// failures degrade to empty contributions, never to an error response.
// GET /api/catalog/unified?platform=pc
func (h *CatalogHandler) Unified(c *gin.Context) {
	games := h.client.FetchUnified(c.Request.Context(), c.Query("platform"))
	c.JSON(http.StatusOK, gin.H{
		"games": games,
		"total": len(games),
	})
}
