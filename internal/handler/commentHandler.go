package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gamerank/internal/dto"
	"gamerank/internal/middleware"
	"gamerank/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterRoutes registers comment routes on the games and comments groups
func (h *CommentHandler) RegisterRoutes(games, comments *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	games.GET("/:game_id/comments", h.ListByGame)
	games.POST("/:game_id/comments", requireAuth, h.Create)

	comments.GET("/:comment_id/votes", h.VoteSummary)
	comments.POST("/:comment_id/votes", requireAuth, h.Vote)
}

// Create posts a comment on a game. Whitespace-only text writes nothing
// and falls through to the current comment list, with no error shown.
// POST /api/games/:game_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	gameID := c.Param("game_id")

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondWithComments(c, gameID)
		return
	}

	comment, err := h.commentService.PostComment(c.Request.Context(), userID.(string), gameID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmptyComment):
			h.respondWithComments(c, gameID)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListByGame retrieves a game's comments newest-first with vote tallies
// GET /api/games/:game_id/comments
func (h *CommentHandler) ListByGame(c *gin.Context) {
	h.respondWithComments(c, c.Param("game_id"))
}

// Vote casts or overwrites the caller's like/dislike on a comment. An
// unknown kind writes nothing and returns the current tallies.
// POST /api/comments/:comment_id/votes
func (h *CommentHandler) Vote(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.VoteCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondWithVoteSummary(c, commentID, userID.(string))
		return
	}

	summary, err := h.commentService.VoteComment(c.Request.Context(), userID.(string), commentID, req.Kind)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidVoteKind):
			h.respondWithVoteSummary(c, commentID, userID.(string))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

// VoteSummary retrieves the recomputed tallies for one comment
// GET /api/comments/:comment_id/votes
func (h *CommentHandler) VoteSummary(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	h.respondWithVoteSummary(c, commentID, middleware.ViewerID(c))
}

func (h *CommentHandler) respondWithComments(c *gin.Context, gameID string) {
	comments, err := h.commentService.GetGameComments(c.Request.Context(), gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"comments": comments,
		"total":    len(comments),
	})
}

func (h *CommentHandler) respondWithVoteSummary(c *gin.Context, commentID int64, viewerID string) {
	summary, err := h.commentService.VoteSummary(c.Request.Context(), commentID, viewerID)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
