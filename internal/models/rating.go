package models

import "time"

// Rating is a one-time score (0-5) a user assigns to a game. The
// (user_id, game_id) unique index is what closes the double-rating race:
// a second concurrent insert is rejected by the store, not by the app.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_game"`
	GameID    string    `json:"game_id" gorm:"size:100;not null;uniqueIndex:idx_ratings_user_game"`
	Score     int       `json:"score" gorm:"not null;check:score >= 0 AND score <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game Game `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
