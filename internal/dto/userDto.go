package dto

// RatedGameResponse is one row of the user's rated-games list: the game
// with global aggregates plus the user's own score.
type RatedGameResponse struct {
	GameSummary
	MyScore int `json:"my_score"`
}

// RatedGamesResponse lists the games the user rated, ordered by
// descending personal score.
type RatedGamesResponse struct {
	Games []RatedGameResponse `json:"games"`
	Total int                 `json:"total"`
}

// UserPageResponse is the authenticated user's page payload
type UserPageResponse struct {
	Username      string                `json:"username"`
	DisplayName   string                `json:"display_name"`
	NumRatings    int64                 `json:"num_ratings"`
	UserAverage   *float64              `json:"user_average"`
	NumComments   int64                 `json:"num_comments"`
	RatedGames    []RatedGameResponse   `json:"rated_games"`
	FollowedGames []GameSummary         `json:"followed_games"`
	Comments      []UserCommentResponse `json:"comments"`
}

// SiteMetricsResponse carries the footer totals: site-wide counts plus
// the viewer's own counts (zero for anonymous callers).
type SiteMetricsResponse struct {
	TotalGames    int64 `json:"total_games"`
	TotalComments int64 `json:"total_comments"`
	UserVotes     int64 `json:"user_votes"`
	UserComments  int64 `json:"user_comments"`
}
