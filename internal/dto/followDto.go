package dto

// FollowStateResponse reports the follow state after a toggle. Both the
// follow and unfollow operations are idempotent, so the handler answers
// with the resulting state rather than an error when nothing changed.
type FollowStateResponse struct {
	GameID    string `json:"game_id"`
	Following bool   `json:"following"`
}

// FollowedGamesResponse lists the games a user follows, ordered by
// descending global average rating.
type FollowedGamesResponse struct {
	Games []GameSummary `json:"games"`
	Total int           `json:"total"`
}
