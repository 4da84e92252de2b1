package dto

import "gamerank/internal/models"

// UpdateSettingsDTO allows partial updates: any of the three axes may be
// changed independently.
type UpdateSettingsDTO struct {
	Alias    *string `json:"alias,omitempty"`
	FontType *string `json:"font_type,omitempty" binding:"omitempty,oneof=fuente-sans-serif fuente-serif fuente-monospace fuente-decorativa"`
	TextSize *string `json:"text_size,omitempty" binding:"omitempty,oneof=tamano-small tamano-medium tamano-large tamano-xl"`
}

// SettingsResponse returns the effective settings. DisplayName is the
// alias, or the username when the alias is empty.
type SettingsResponse struct {
	Alias       string `json:"alias"`
	FontType    string `json:"font_type"`
	TextSize    string `json:"text_size"`
	DisplayName string `json:"display_name"`
}

func (d UpdateSettingsDTO) ApplyTo(s *models.UserSettings) {
	if d.Alias != nil {
		s.Alias = *d.Alias
	}
	if d.FontType != nil {
		s.FontType = *d.FontType
	}
	if d.TextSize != nil {
		s.TextSize = *d.TextSize
	}
}
