package dto

import (
	"time"

	"gamerank/internal/models"
)

// GameResponse carries the full public fields of a game
type GameResponse struct {
	GameID           string     `json:"game_id"`
	Title            string     `json:"title"`
	Platform         string     `json:"platform"`
	Genre            string     `json:"genre"`
	Developer        string     `json:"developer,omitempty"`
	Publisher        string     `json:"publisher,omitempty"`
	ReleaseDate      *time.Time `json:"release_date,omitempty"`
	ShortDescription string     `json:"short_description,omitempty"`
	Thumbnail        string     `json:"thumbnail,omitempty"`
	GameURL          string     `json:"game_url,omitempty"`
	ProfileURL       string     `json:"profile_url,omitempty"`
}

// GameSummary is the listing row: public fields plus the recomputed
// rating aggregates. AverageRating is nil when the game has no ratings.
type GameSummary struct {
	GameID        string   `json:"game_id"`
	Title         string   `json:"title"`
	Platform      string   `json:"platform"`
	Genre         string   `json:"genre"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	AverageRating *float64 `json:"average_rating"`
	TotalVotes    int64    `json:"total_votes"`
	Following     bool     `json:"following,omitempty"`
}

// GameListResponse wraps an ordered listing
type GameListResponse struct {
	Games []GameSummary `json:"games"`
	Total int           `json:"total"`
}

// GameDetailResponse is the single-game view: the game, its aggregates,
// its comments newest-first, and the viewer's own state when logged in.
type GameDetailResponse struct {
	Game          GameResponse      `json:"game"`
	AverageRating *float64          `json:"average_rating"`
	TotalVotes    int64             `json:"total_votes"`
	CommentCount  int64             `json:"comment_count"`
	Comments      []CommentResponse `json:"comments"`
	MyScore       *int              `json:"my_score,omitempty"`
	Following     bool              `json:"following"`
}

// GameRecord is the machine-readable record exposed at the record endpoint.
type GameRecord struct {
	Identifier    string   `json:"identifier"`
	Title         string   `json:"title"`
	Genre         string   `json:"genre"`
	Platform      string   `json:"platform"`
	Developer     string   `json:"developer"`
	Publisher     string   `json:"publisher"`
	ReleaseDate   *string  `json:"release_date"` // ISO date or null
	Description   string   `json:"description"`
	Thumbnail     string   `json:"thumbnail"`
	AverageRating *float64 `json:"average_rating"` // null when unrated
	CommentCount  int64    `json:"comment_count"`
}

// Converters
func FromModelToGameResponse(g models.Game) GameResponse {
	return GameResponse{
		GameID:           g.GameID,
		Title:            g.Title,
		Platform:         g.Platform,
		Genre:            g.Genre,
		Developer:        g.Developer,
		Publisher:        g.Publisher,
		ReleaseDate:      g.ReleaseDate,
		ShortDescription: g.ShortDescription,
		Thumbnail:        g.Thumbnail,
		GameURL:          g.GameURL,
		ProfileURL:       g.ProfileURL,
	}
}

func FromModelToGameSummary(g models.Game) GameSummary {
	return GameSummary{
		GameID:    g.GameID,
		Title:     g.Title,
		Platform:  g.Platform,
		Genre:     g.Genre,
		Thumbnail: g.Thumbnail,
	}
}
