package handler

import (
	"errors"
	"net/http"

	"gamerank/internal/middleware"
	"gamerank/internal/service"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService service.GameService
}

func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// RegisterRoutes registers the public game routes
func (h *GameHandler) RegisterRoutes(games *gin.RouterGroup, api *gin.RouterGroup) {
	games.GET("", h.List)
	games.GET("/:game_id", h.Detail)
	games.GET("/:game_id/record", h.Record)

	api.GET("/metrics", h.Metrics)
}

// List retrieves the catalog ordered by descending average rating
// GET /api/games
func (h *GameHandler) List(c *gin.Context) {
	games, err := h.gameService.ListGames(c.Request.Context(), middleware.ViewerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, games)
}

// Detail retrieves one game with comments, aggregates and viewer state
// GET /api/games/:game_id
func (h *GameHandler) Detail(c *gin.Context) {
	detail, err := h.gameService.GetGameDetail(c.Request.Context(), c.Param("game_id"), middleware.ViewerID(c))
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Record retrieves the machine-readable record for one game
// GET /api/games/:game_id/record
func (h *GameHandler) Record(c *gin.Context) {
	record, err := h.gameService.GetGameRecord(c.Request.Context(), c.Param("game_id"))
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// Metrics retrieves the site totals plus the viewer's own counts
// GET /api/metrics
func (h *GameHandler) Metrics(c *gin.Context) {
	metrics, err := h.gameService.SiteMetrics(c.Request.Context(), middleware.ViewerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics)
}
