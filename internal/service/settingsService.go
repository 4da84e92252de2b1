package service

import (
	"context"
	"errors"

	"gamerank/internal/dto"
	"gamerank/internal/models"
	"gamerank/internal/repository"

	"gorm.io/gorm"
)

type SettingsService interface {
	GetSettings(ctx context.Context, userID string) (*dto.SettingsResponse, error)
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsDTO) (*dto.SettingsResponse, error)
	DisplayName(ctx context.Context, userID string) (string, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	userRepo     repository.UserRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository, userRepo repository.UserRepository) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
	}
}

// GetSettings returns the user's settings, falling back to defaults when
// no row exists. Reading never persists anything; only the update path
// creates the row.
func (s *settingsService) GetSettings(ctx context.Context, userID string) (*dto.SettingsResponse, error) {
	settings, err := s.settingsRepo.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		settings = models.DefaultSettings(userID)
	}
	return s.toResponse(ctx, settings)
}

// UpdateSettings applies a partial update, creating the row with defaults
// first if the user has none yet.
func (s *settingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsDTO) (*dto.SettingsResponse, error) {
	settings, err := s.settingsRepo.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		settings = models.DefaultSettings(userID)
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(settings)
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, settings)
}

// DisplayName resolves how the user is shown elsewhere in the system:
// the alias when set, otherwise the username.
func (s *settingsService) DisplayName(ctx context.Context, userID string) (string, error) {
	settings, err := s.settingsRepo.GetByUser(ctx, userID)
	if err == nil && settings.Alias != "" {
		return settings.Alias, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

func (s *settingsService) toResponse(ctx context.Context, settings *models.UserSettings) (*dto.SettingsResponse, error) {
	display := settings.Alias
	if display == "" {
		user, err := s.userRepo.FindByID(ctx, settings.UserID)
		if err != nil {
			return nil, err
		}
		display = user.Username
	}
	return &dto.SettingsResponse{
		Alias:       settings.Alias,
		FontType:    settings.FontType,
		TextSize:    settings.TextSize,
		DisplayName: display,
	}, nil
}
