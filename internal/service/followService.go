package service

import (
	"context"
	"errors"

	"gamerank/internal/dto"
	"gamerank/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadyFollowing = errors.New("already following this game")
	ErrNotFollowing     = errors.New("not following this game")
)

type FollowService interface {
	Follow(ctx context.Context, userID, gameID string) error
	Unfollow(ctx context.Context, userID, gameID string) error
	IsFollowing(ctx context.Context, userID, gameID string) (bool, error)
	GetFollowedGames(ctx context.Context, userID string) (*dto.FollowedGamesResponse, error)
}

type followService struct {
	followRepo repository.FollowRepository
	ratingRepo repository.RatingRepository
	gameRepo   repository.GameRepository
}

func NewFollowService(
	followRepo repository.FollowRepository,
	ratingRepo repository.RatingRepository,
	gameRepo repository.GameRepository,
) FollowService {
	return &followService{
		followRepo: followRepo,
		ratingRepo: ratingRepo,
		gameRepo:   gameRepo,
	}
}

// Follow subscribes the user to a game. Following a game twice is a
// no-op reported as ErrAlreadyFollowing; each toggle is a single insert
// so no partial state is possible.
func (s *followService) Follow(ctx context.Context, userID, gameID string) error {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}

	following, err := s.followRepo.Exists(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if following {
		return ErrAlreadyFollowing
	}

	if err := s.followRepo.Create(ctx, userID, gameID); err != nil {
		// Concurrent follow for the same pair: the unique index keeps a
		// single record, so this is the same no-op.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

// Unfollow removes the subscription; unfollowing while not following is
// a no-op reported as ErrNotFollowing.
func (s *followService) Unfollow(ctx context.Context, userID, gameID string) error {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}

	if err := s.followRepo.Delete(ctx, userID, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFollowing
		}
		return err
	}
	return nil
}

func (s *followService) IsFollowing(ctx context.Context, userID, gameID string) (bool, error) {
	return s.followRepo.Exists(ctx, userID, gameID)
}

// GetFollowedGames lists the games the user follows, ordered by global
// average rating (games without ratings sort as zero, identifier breaks
// ties).
func (s *followService) GetFollowedGames(ctx context.Context, userID string) (*dto.FollowedGamesResponse, error) {
	follows, err := s.followRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.GameSummary, 0, len(follows))
	for _, f := range follows {
		if f.Game == nil {
			continue
		}
		summary := dto.FromModelToGameSummary(*f.Game)
		avg, err := s.ratingRepo.Average(ctx, f.GameID)
		if err != nil {
			return nil, err
		}
		count, err := s.ratingRepo.Count(ctx, f.GameID)
		if err != nil {
			return nil, err
		}
		summary.AverageRating = round2(avg)
		summary.TotalVotes = count
		summary.Following = true
		summaries = append(summaries, summary)
	}

	sortByAverageDesc(summaries)

	return &dto.FollowedGamesResponse{
		Games: summaries,
		Total: len(summaries),
	}, nil
}
