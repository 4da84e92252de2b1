package handler

import (
	"net/http"

	"gamerank/internal/dto"
	"gamerank/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// RegisterRoutes registers the display-settings routes
func (h *SettingsHandler) RegisterRoutes(users *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	settings := users.Group("/me/settings", requireAuth)
	{
		settings.GET("", h.Get)
		settings.PUT("", h.Update)
	}
}

// Get retrieves the caller's settings. Users without a settings row get
// the defaults; nothing is persisted by reading.
// GET /api/users/me/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update applies a partial settings change, creating the row on first use
// PUT /api/users/me/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UpdateSettingsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), userID.(string), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
