package models

import "time"

type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	GameID    string    `json:"game_id" gorm:"size:100;not null;index"`
	Text      string    `json:"text" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User  User          `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game  Game          `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
	Votes []CommentVote `json:"votes,omitempty" gorm:"foreignKey:CommentID"`
}

func (Comment) TableName() string {
	return "comments"
}
