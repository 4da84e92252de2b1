package models

import "time"

// Game is a catalog entry. Games are created by the import tools only,
// never by end users, and the identifier is immutable once created.
type Game struct {
	GameID           string     `json:"game_id" gorm:"primaryKey;size:100"`
	Title            string     `json:"title" gorm:"not null;size:100"`
	Platform         string     `json:"platform" gorm:"size:100"`
	Genre            string     `json:"genre" gorm:"size:100"`
	Developer        string     `json:"developer" gorm:"size:100"`
	Publisher        string     `json:"publisher" gorm:"size:100"`
	ReleaseDate      *time.Time `json:"release_date,omitempty"`
	ShortDescription string     `json:"short_description" gorm:"type:text"`
	Thumbnail        string     `json:"thumbnail"`
	GameURL          string     `json:"game_url"`
	ProfileURL       string     `json:"profile_url"`
}

func (Game) TableName() string {
	return "games"
}
