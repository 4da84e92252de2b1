package service

import (
	"context"
	"sort"

	"gamerank/internal/dto"
	"gamerank/internal/repository"
)

type UserService interface {
	GetUserPage(ctx context.Context, userID string) (*dto.UserPageResponse, error)
	GetRatedGames(ctx context.Context, userID string) (*dto.RatedGamesResponse, error)
}

type userService struct {
	userRepo    repository.UserRepository
	ratingRepo  repository.RatingRepository
	commentRepo repository.CommentRepository
	followSvc   FollowService
	settingsSvc SettingsService
}

func NewUserService(
	userRepo repository.UserRepository,
	ratingRepo repository.RatingRepository,
	commentRepo repository.CommentRepository,
	followSvc FollowService,
	settingsSvc SettingsService,
) UserService {
	return &userService{
		userRepo:    userRepo,
		ratingRepo:  ratingRepo,
		commentRepo: commentRepo,
		followSvc:   followSvc,
		settingsSvc: settingsSvc,
	}
}

// GetUserPage assembles the authenticated user's page: rating/comment
// counts, personal average, rated games by personal score, followed
// games and own comments.
func (s *userService) GetUserPage(ctx context.Context, userID string) (*dto.UserPageResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	numRatings, err := s.ratingRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	userAverage, err := s.ratingRepo.AverageByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	numComments, err := s.commentRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rated, err := s.GetRatedGames(ctx, userID)
	if err != nil {
		return nil, err
	}
	followed, err := s.followSvc.GetFollowedGames(ctx, userID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	commentResponses := make([]dto.UserCommentResponse, 0, len(comments))
	for _, c := range comments {
		commentResponses = append(commentResponses, dto.FromModelToUserCommentResponse(c))
	}

	displayName, err := s.settingsSvc.DisplayName(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserPageResponse{
		Username:      user.Username,
		DisplayName:   displayName,
		NumRatings:    numRatings,
		UserAverage:   round2(userAverage),
		NumComments:   numComments,
		RatedGames:    rated.Games,
		FollowedGames: followed.Games,
		Comments:      commentResponses,
	}, nil
}

// GetRatedGames lists the games the user rated, ordered by descending
// personal score rather than global average. Identifier breaks ties.
func (s *userService) GetRatedGames(ctx context.Context, userID string) (*dto.RatedGamesResponse, error) {
	ratings, err := s.ratingRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	games := make([]dto.RatedGameResponse, 0, len(ratings))
	for _, r := range ratings {
		summary := dto.FromModelToGameSummary(r.Game)
		avg, err := s.ratingRepo.Average(ctx, r.GameID)
		if err != nil {
			return nil, err
		}
		count, err := s.ratingRepo.Count(ctx, r.GameID)
		if err != nil {
			return nil, err
		}
		summary.AverageRating = round2(avg)
		summary.TotalVotes = count
		games = append(games, dto.RatedGameResponse{
			GameSummary: summary,
			MyScore:     r.Score,
		})
	}

	sort.Slice(games, func(i, j int) bool {
		if games[i].MyScore != games[j].MyScore {
			return games[i].MyScore > games[j].MyScore
		}
		return games[i].GameID < games[j].GameID
	})

	return &dto.RatedGamesResponse{
		Games: games,
		Total: len(games),
	}, nil
}
