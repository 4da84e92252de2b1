package handler

import (
	"errors"
	"net/http"

	"gamerank/internal/dto"
	"gamerank/internal/middleware"
	"gamerank/internal/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers rating-related routes on the games group
func (h *RatingHandler) RegisterRoutes(games *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	games.GET("/:game_id/ratings", h.Summary)
	games.POST("/:game_id/ratings", requireAuth, h.Create)
}

// Create casts the caller's one-time rating for a game. A malformed or
// out-of-range score and a repeated rating are not errors: nothing is
// written and the current summary is returned, per the site's
// redisplay-without-error behaviour.
// POST /api/games/:game_id/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	gameID := c.Param("game_id")

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil || req.Score == nil {
		h.respondWithSummary(c, gameID, userID.(string))
		return
	}

	summary, err := h.ratingService.RateGame(c.Request.Context(), userID.(string), gameID, *req.Score)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidScore), errors.Is(err, service.ErrAlreadyRated):
			h.respondWithSummary(c, gameID, userID.(string))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// Summary retrieves the recomputed average rating and vote count
// GET /api/games/:game_id/ratings
func (h *RatingHandler) Summary(c *gin.Context) {
	h.respondWithSummary(c, c.Param("game_id"), middleware.ViewerID(c))
}

func (h *RatingHandler) respondWithSummary(c *gin.Context, gameID, viewerID string) {
	summary, err := h.ratingService.GameRatingSummary(c.Request.Context(), gameID, viewerID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
