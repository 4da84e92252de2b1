package dto

// CreateRatingDTO for casting a rating. Score is a pointer so that a
// legitimate zero survives the required check.
type CreateRatingDTO struct {
	Score *int `json:"score" binding:"required"`
}

// RatingSummaryResponse is the recomputed rating state of one game
type RatingSummaryResponse struct {
	GameID        string   `json:"game_id"`
	AverageRating *float64 `json:"average_rating"`
	TotalVotes    int64    `json:"total_votes"`
	MyScore       *int     `json:"my_score,omitempty"`
}
