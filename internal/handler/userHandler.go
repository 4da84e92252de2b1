package handler

import (
	"net/http"

	"gamerank/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService   service.UserService
	followService service.FollowService
}

func NewUserHandler(userService service.UserService, followService service.FollowService) *UserHandler {
	return &UserHandler{
		userService:   userService,
		followService: followService,
	}
}

// RegisterRoutes registers the authenticated user pages
func (h *UserHandler) RegisterRoutes(users *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	me := users.Group("/me", requireAuth)
	{
		me.GET("", h.Page)
		me.GET("/rated", h.RatedGames)
		me.GET("/followed", h.FollowedGames)
	}
}

// Page retrieves the caller's user page: counts, personal average, rated
// and followed games, own comments
// GET /api/users/me
func (h *UserHandler) Page(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	page, err := h.userService.GetUserPage(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// RatedGames lists the caller's rated games by descending personal score
// GET /api/users/me/rated
func (h *UserHandler) RatedGames(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	games, err := h.userService.GetRatedGames(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, games)
}

// FollowedGames lists the games the caller follows by descending average
// GET /api/users/me/followed
func (h *UserHandler) FollowedGames(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	games, err := h.followService.GetFollowedGames(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, games)
}
