package repository

import (
	"context"
	"fmt"

	"gamerank/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepository interface {
	GetAll(ctx context.Context) ([]models.Game, error)
	GetByID(ctx context.Context, gameID string) (*models.Game, error)
	CreateIfAbsent(ctx context.Context, game *models.Game) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

// GetAll retrieves every game, ordered by identifier. Ordering by average
// rating is done by the service layer, which owns the "no ratings counts
// as zero" policy.
func (r *gameRepository) GetAll(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Order("game_id ASC").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

func (r *gameRepository) GetByID(ctx context.Context, gameID string) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).First(&game, "game_id = ?", gameID).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// CreateIfAbsent inserts the game unless its identifier already exists.
// Existing rows are never touched: the identifier is immutable and imports
// must not overwrite user-visible data. Returns whether a row was created.
func (r *gameRepository) CreateIfAbsent(ctx context.Context, game *models.Game) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(game)
	if result.Error != nil {
		return false, fmt.Errorf("create game: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gameRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Game{}).Count(&count).Error
	return count, err
}
