package handler

import (
	"errors"
	"net/http"

	"gamerank/internal/dto"
	"gamerank/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followService service.FollowService
}

func NewFollowHandler(followService service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterRoutes registers the follow toggle on the games group
func (h *FollowHandler) RegisterRoutes(games *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	games.PUT("/:game_id/follow", requireAuth, h.Follow)
	games.DELETE("/:game_id/follow", requireAuth, h.Unfollow)
}

// Follow subscribes the caller to a game. Following twice is a no-op:
// the response reports the resulting state either way.
// PUT /api/games/:game_id/follow
func (h *FollowHandler) Follow(c *gin.Context) {
	h.toggle(c, true)
}

// Unfollow removes the subscription; unfollowing while not following is
// the same kind of no-op.
// DELETE /api/games/:game_id/follow
func (h *FollowHandler) Unfollow(c *gin.Context) {
	h.toggle(c, false)
}

func (h *FollowHandler) toggle(c *gin.Context, follow bool) {
	gameID := c.Param("game_id")

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var err error
	if follow {
		err = h.followService.Follow(c.Request.Context(), userID.(string), gameID)
	} else {
		err = h.followService.Unfollow(c.Request.Context(), userID.(string), gameID)
	}

	if err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		case errors.Is(err, service.ErrAlreadyFollowing), errors.Is(err, service.ErrNotFollowing):
			// already in the requested state
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, dto.FollowStateResponse{
		GameID:    gameID,
		Following: follow,
	})
}
