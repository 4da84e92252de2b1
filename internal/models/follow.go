package models

import "time"

type Follow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_follows_user_game" json:"user_id"`
	GameID    string    `gorm:"size:100;not null;uniqueIndex:idx_follows_user_game" json:"game_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Game *Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;" json:"game,omitempty"`
}

func (Follow) TableName() string {
	return "follows"
}
