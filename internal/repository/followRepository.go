package repository

import (
	"context"
	"fmt"

	"gamerank/internal/models"

	"gorm.io/gorm"
)

type FollowRepository interface {
	Create(ctx context.Context, userID, gameID string) error
	Delete(ctx context.Context, userID, gameID string) error
	Exists(ctx context.Context, userID, gameID string) (bool, error)
	GetByUser(ctx context.Context, userID string) ([]models.Follow, error)
	FollowedGameIDs(ctx context.Context, userID string) ([]string, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, userID, gameID string) error {
	follow := &models.Follow{
		UserID: userID,
		GameID: gameID,
	}
	return r.db.WithContext(ctx).Create(follow).Error
}

// Delete removes a follow. Returns gorm.ErrRecordNotFound when the user
// was not following, so callers can treat that as the unfollow no-op.
func (r *followRepository) Delete(ctx context.Context, userID, gameID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return fmt.Errorf("delete follow: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, userID, gameID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *followRepository) GetByUser(ctx context.Context, userID string) ([]models.Follow, error) {
	var follows []models.Follow
	if err := r.db.WithContext(ctx).
		Preload("Game").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&follows).Error; err != nil {
		return nil, fmt.Errorf("list follows: %w", err)
	}
	return follows, nil
}

// FollowedGameIDs returns the set of game identifiers the user follows,
// used to mark follow buttons as active in listings.
func (r *followRepository) FollowedGameIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ?", userID).
		Pluck("game_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
