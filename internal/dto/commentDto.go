package dto

import (
	"time"

	"gamerank/internal/models"
)

// CreateCommentDTO for posting a comment. Text is deliberately not
// tagged required: a blank comment is a silent no-op, not a 400.
type CreateCommentDTO struct {
	Text string `json:"text"`
}

// VoteCommentDTO for liking or disliking a comment
type VoteCommentDTO struct {
	Kind string `json:"kind"`
}

// CommentResponse for returning comment information with vote tallies
type CommentResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int64     `json:"likes"`
	Dislikes  int64     `json:"dislikes"`
}

// VoteSummaryResponse is the recomputed tally after a vote
type VoteSummaryResponse struct {
	CommentID int64   `json:"comment_id"`
	Likes     int64   `json:"likes"`
	Dislikes  int64   `json:"dislikes"`
	MyVote    *string `json:"my_vote,omitempty"`
}

// UserCommentResponse is a comment as shown on the user's own page
type UserCommentResponse struct {
	ID        int64     `json:"id"`
	GameID    string    `json:"game_id"`
	GameTitle string    `json:"game_title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToCommentResponse converts a Comment model; vote tallies are
// filled in by the service since they live in a different table.
func FromModelToCommentResponse(c *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		Username:  c.User.Username,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func FromModelToUserCommentResponse(c models.Comment) UserCommentResponse {
	return UserCommentResponse{
		ID:        c.ID,
		GameID:    c.GameID,
		GameTitle: c.Game.Title,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
