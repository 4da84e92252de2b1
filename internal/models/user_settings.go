package models

// Font and text-size choices mirror the CSS classes the front end applies.
const (
	FontSansSerif  = "fuente-sans-serif"
	FontSerif      = "fuente-serif"
	FontMonospace  = "fuente-monospace"
	FontDecorative = "fuente-decorativa"

	TextSizeSmall  = "tamano-small"
	TextSizeMedium = "tamano-medium"
	TextSizeLarge  = "tamano-large"
	TextSizeXL     = "tamano-xl"
)

// UserSettings holds per-user display customization. The row is created
// lazily by the settings update path; read paths fall back to defaults
// without persisting anything.
type UserSettings struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID   string `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	Alias    string `json:"alias" gorm:"size:100"`
	FontType string `json:"font_type" gorm:"size:30;default:'fuente-sans-serif'"`
	TextSize string `json:"text_size" gorm:"size:20;default:'tamano-medium'"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// DefaultSettings returns the unpersisted defaults for a user without a row.
func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:   userID,
		FontType: FontSansSerif,
		TextSize: TextSizeMedium,
	}
}
