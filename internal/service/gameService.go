package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"gamerank/internal/dto"
	"gamerank/internal/repository"

	"gorm.io/gorm"
)

type GameService interface {
	ListGames(ctx context.Context, viewerID string) (*dto.GameListResponse, error)
	GetGameDetail(ctx context.Context, gameID, viewerID string) (*dto.GameDetailResponse, error)
	GetGameRecord(ctx context.Context, gameID string) (*dto.GameRecord, error)
	SiteMetrics(ctx context.Context, viewerID string) (*dto.SiteMetricsResponse, error)
}

type gameService struct {
	gameRepo    repository.GameRepository
	ratingRepo  repository.RatingRepository
	commentRepo repository.CommentRepository
	followRepo  repository.FollowRepository
	commentSvc  CommentService
}

func NewGameService(
	gameRepo repository.GameRepository,
	ratingRepo repository.RatingRepository,
	commentRepo repository.CommentRepository,
	followRepo repository.FollowRepository,
	commentSvc CommentService,
) GameService {
	return &gameService{
		gameRepo:    gameRepo,
		ratingRepo:  ratingRepo,
		commentRepo: commentRepo,
		followRepo:  followRepo,
		commentSvc:  commentSvc,
	}
}

// ListGames returns the catalog ordered by descending average rating.
// Games without ratings are kept in the list and sort as zero. When the
// viewer is logged in, their followed games are flagged.
func (s *gameService) ListGames(ctx context.Context, viewerID string) (*dto.GameListResponse, error) {
	games, err := s.gameRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	followed := map[string]bool{}
	if viewerID != "" {
		ids, err := s.followRepo.FollowedGameIDs(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			followed[id] = true
		}
	}

	summaries := make([]dto.GameSummary, 0, len(games))
	for _, g := range games {
		summary := dto.FromModelToGameSummary(g)
		avg, err := s.ratingRepo.Average(ctx, g.GameID)
		if err != nil {
			return nil, err
		}
		count, err := s.ratingRepo.Count(ctx, g.GameID)
		if err != nil {
			return nil, err
		}
		summary.AverageRating = round2(avg)
		summary.TotalVotes = count
		summary.Following = followed[g.GameID]
		summaries = append(summaries, summary)
	}

	sortByAverageDesc(summaries)

	return &dto.GameListResponse{
		Games: summaries,
		Total: len(summaries),
	}, nil
}

// GetGameDetail returns one game with its aggregates, comments and the
// viewer's own rating/follow state (viewerID empty for anonymous).
func (s *gameService) GetGameDetail(ctx context.Context, gameID, viewerID string) (*dto.GameDetailResponse, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	avg, err := s.ratingRepo.Average(ctx, gameID)
	if err != nil {
		return nil, err
	}
	votes, err := s.ratingRepo.Count(ctx, gameID)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.commentRepo.CountByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentSvc.GetGameComments(ctx, gameID)
	if err != nil {
		return nil, err
	}

	detail := &dto.GameDetailResponse{
		Game:          dto.FromModelToGameResponse(*game),
		AverageRating: round2(avg),
		TotalVotes:    votes,
		CommentCount:  commentCount,
		Comments:      comments,
	}

	if viewerID != "" {
		if mine, err := s.ratingRepo.GetByUserAndGame(ctx, viewerID, gameID); err == nil {
			detail.MyScore = &mine.Score
		}
		following, err := s.followRepo.Exists(ctx, viewerID, gameID)
		if err != nil {
			return nil, err
		}
		detail.Following = following
	}

	return detail, nil
}

// GetGameRecord builds the machine-readable record for one game.
func (s *gameService) GetGameRecord(ctx context.Context, gameID string) (*dto.GameRecord, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	avg, err := s.ratingRepo.Average(ctx, gameID)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.commentRepo.CountByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	var releaseDate *string
	if game.ReleaseDate != nil {
		iso := game.ReleaseDate.Format(time.DateOnly)
		releaseDate = &iso
	}

	return &dto.GameRecord{
		Identifier:    game.GameID,
		Title:         game.Title,
		Genre:         game.Genre,
		Platform:      game.Platform,
		Developer:     game.Developer,
		Publisher:     game.Publisher,
		ReleaseDate:   releaseDate,
		Description:   game.ShortDescription,
		Thumbnail:     game.Thumbnail,
		AverageRating: round2(avg),
		CommentCount:  commentCount,
	}, nil
}

// SiteMetrics returns the footer totals; the per-user counts are zero
// for anonymous viewers.
func (s *gameService) SiteMetrics(ctx context.Context, viewerID string) (*dto.SiteMetricsResponse, error) {
	totalGames, err := s.gameRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalComments, err := s.commentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	metrics := &dto.SiteMetricsResponse{
		TotalGames:    totalGames,
		TotalComments: totalComments,
	}

	if viewerID != "" {
		userVotes, err := s.ratingRepo.CountByUser(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		userComments, err := s.commentRepo.CountByUser(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		metrics.UserVotes = userVotes
		metrics.UserComments = userComments
	}

	return metrics, nil
}

// sortByAverageDesc orders summaries by descending average rating with
// missing averages counting as zero. Ties break on ascending identifier
// so the order is deterministic regardless of store iteration order.
func sortByAverageDesc(summaries []dto.GameSummary) {
	sort.Slice(summaries, func(i, j int) bool {
		a, b := 0.0, 0.0
		if summaries[i].AverageRating != nil {
			a = *summaries[i].AverageRating
		}
		if summaries[j].AverageRating != nil {
			b = *summaries[j].AverageRating
		}
		if a != b {
			return a > b
		}
		return summaries[i].GameID < summaries[j].GameID
	})
}
