package service

import (
	"context"
	"errors"
	"math"

	"gamerank/internal/dto"
	"gamerank/internal/models"
	"gamerank/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrAlreadyRated = errors.New("game already rated")
	ErrInvalidScore = errors.New("score must be between 0 and 5")
)

type RatingService interface {
	RateGame(ctx context.Context, userID, gameID string, score int) (*dto.RatingSummaryResponse, error)
	GameRatingSummary(ctx context.Context, gameID, viewerID string) (*dto.RatingSummaryResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	gameRepo   repository.GameRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, gameRepo repository.GameRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		gameRepo:   gameRepo,
	}
}

// RateGame records a one-time rating. A rating is immutable once cast:
// any later attempt for the same (user, game) pair leaves the original
// untouched and returns ErrAlreadyRated. Callers treat that, and
// ErrInvalidScore, as no-ops.
func (s *ratingService) RateGame(ctx context.Context, userID, gameID string, score int) (*dto.RatingSummaryResponse, error) {
	if score < 0 || score > 5 {
		return nil, ErrInvalidScore
	}

	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	existing, err := s.ratingRepo.GetByUserAndGame(ctx, userID, gameID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyRated
	}

	rating := &models.Rating{
		UserID: userID,
		GameID: gameID,
		Score:  score,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		// A concurrent writer beat us to the unique index; the first
		// rating wins and this one is the usual no-op.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}

	return s.GameRatingSummary(ctx, gameID, userID)
}

// GameRatingSummary recomputes the game's rating aggregates. viewerID may
// be empty for anonymous callers.
func (s *ratingService) GameRatingSummary(ctx context.Context, gameID, viewerID string) (*dto.RatingSummaryResponse, error) {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	avg, err := s.ratingRepo.Average(ctx, gameID)
	if err != nil {
		return nil, err
	}
	count, err := s.ratingRepo.Count(ctx, gameID)
	if err != nil {
		return nil, err
	}

	summary := &dto.RatingSummaryResponse{
		GameID:        gameID,
		AverageRating: round2(avg),
		TotalVotes:    count,
	}

	if viewerID != "" {
		if mine, err := s.ratingRepo.GetByUserAndGame(ctx, viewerID, gameID); err == nil {
			summary.MyScore = &mine.Score
		}
	}

	return summary, nil
}

// round2 rounds an average to 2 decimal places, preserving nil for the
// "no ratings" case.
func round2(avg *float64) *float64 {
	if avg == nil {
		return nil
	}
	rounded := math.Round(*avg*100) / 100
	return &rounded
}
