package repository

import (
	"context"

	"gamerank/internal/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	GetByUser(ctx context.Context, userID string) (*models.UserSettings, error)
	Create(ctx context.Context, settings *models.UserSettings) error
	Save(ctx context.Context, settings *models.UserSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByUser(ctx context.Context, userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Create(ctx context.Context, settings *models.UserSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *settingsRepository) Save(ctx context.Context, settings *models.UserSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
