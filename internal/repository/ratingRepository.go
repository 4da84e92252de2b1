package repository

import (
	"context"
	"database/sql"

	"gamerank/internal/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	GetByUserAndGame(ctx context.Context, userID, gameID string) (*models.Rating, error)
	GetByUser(ctx context.Context, userID string) ([]models.Rating, error)
	Average(ctx context.Context, gameID string) (*float64, error)
	Count(ctx context.Context, gameID string) (int64, error)
	AverageByUser(ctx context.Context, userID string) (*float64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating. The unique (user_id, game_id) index makes a second
// insert for the same pair fail with a duplicated-key error.
func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

// GetByUserAndGame retrieves a user's rating for a specific game
func (r *ratingRepository) GetByUserAndGame(ctx context.Context, userID, gameID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByUser retrieves all ratings by a user with their games preloaded
func (r *ratingRepository) GetByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Game").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// Average computes the mean score for a game. Returns nil when the game
// has no ratings: "no ratings" and "average of zero" are different things.
func (r *ratingRepository) Average(ctx context.Context, gameID string) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("AVG(score)").
		Where("game_id = ?", gameID).
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// Count counts the total number of ratings for a game
func (r *ratingRepository) Count(ctx context.Context, gameID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("game_id = ?", gameID).
		Count(&count).Error
	return count, err
}

// AverageByUser computes the mean score a user has given across all games
func (r *ratingRepository) AverageByUser(ctx context.Context, userID string) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("AVG(score)").
		Where("user_id = ?", userID).
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

func (r *ratingRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
