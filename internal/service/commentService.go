package service

import (
	"context"
	"errors"
	"strings"

	"gamerank/internal/dto"
	"gamerank/internal/models"
	"gamerank/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyComment    = errors.New("comment text is empty")
	ErrInvalidVoteKind = errors.New("vote kind must be like or dislike")
)

type CommentService interface {
	PostComment(ctx context.Context, userID, gameID, text string) (*dto.CommentResponse, error)
	GetGameComments(ctx context.Context, gameID string) ([]dto.CommentResponse, error)
	VoteComment(ctx context.Context, userID string, commentID int64, kind string) (*dto.VoteSummaryResponse, error)
	VoteSummary(ctx context.Context, commentID int64, viewerID string) (*dto.VoteSummaryResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	voteRepo    repository.CommentVoteRepository
	gameRepo    repository.GameRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	voteRepo repository.CommentVoteRepository,
	gameRepo repository.GameRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		voteRepo:    voteRepo,
		gameRepo:    gameRepo,
	}
}

// PostComment creates a comment on a game. Whitespace-only text is
// rejected with ErrEmptyComment, which callers treat as a silent no-op.
// Comments are never edited after creation.
func (s *commentService) PostComment(ctx context.Context, userID, gameID, text string) (*dto.CommentResponse, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyComment
	}

	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		UserID: userID,
		GameID: gameID,
		Text:   trimmed,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	// Reload with user data
	comment, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

// GetGameComments lists a game's comments newest-first with their vote
// tallies recomputed from the vote table.
func (s *commentService) GetGameComments(ctx context.Context, gameID string) ([]dto.CommentResponse, error) {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.GetByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		resp := dto.FromModelToCommentResponse(&comments[i])
		likes, err := s.voteRepo.CountByKind(ctx, comments[i].ID, models.VoteLike)
		if err != nil {
			return nil, err
		}
		dislikes, err := s.voteRepo.CountByKind(ctx, comments[i].ID, models.VoteDislike)
		if err != nil {
			return nil, err
		}
		resp.Likes = likes
		resp.Dislikes = dislikes
		responses = append(responses, *resp)
	}
	return responses, nil
}

// VoteComment casts or overwrites a user's like/dislike on a comment.
// A user has at most one vote per comment; switching kind replaces the
// existing record rather than adding another.
func (s *commentService) VoteComment(ctx context.Context, userID string, commentID int64, kind string) (*dto.VoteSummaryResponse, error) {
	if kind != models.VoteLike && kind != models.VoteDislike {
		return nil, ErrInvalidVoteKind
	}

	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	existing, err := s.voteRepo.GetByUserAndComment(ctx, userID, commentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.Kind != kind {
			if err := s.voteRepo.UpdateKind(ctx, existing.ID, kind); err != nil {
				return nil, err
			}
		}
	} else {
		vote := &models.CommentVote{
			UserID:    userID,
			CommentID: commentID,
			Kind:      kind,
		}
		if err := s.voteRepo.Create(ctx, vote); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the insert race; overwrite the winner's kind.
				raced, gerr := s.voteRepo.GetByUserAndComment(ctx, userID, commentID)
				if gerr != nil {
					return nil, gerr
				}
				if err := s.voteRepo.UpdateKind(ctx, raced.ID, kind); err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
	}

	return s.voteSummary(ctx, commentID, userID)
}

// VoteSummary recomputes a comment's tallies for display.
func (s *commentService) VoteSummary(ctx context.Context, commentID int64, viewerID string) (*dto.VoteSummaryResponse, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return s.voteSummary(ctx, commentID, viewerID)
}

func (s *commentService) voteSummary(ctx context.Context, commentID int64, viewerID string) (*dto.VoteSummaryResponse, error) {
	likes, err := s.voteRepo.CountByKind(ctx, commentID, models.VoteLike)
	if err != nil {
		return nil, err
	}
	dislikes, err := s.voteRepo.CountByKind(ctx, commentID, models.VoteDislike)
	if err != nil {
		return nil, err
	}

	summary := &dto.VoteSummaryResponse{
		CommentID: commentID,
		Likes:     likes,
		Dislikes:  dislikes,
	}
	if viewerID != "" {
		if mine, err := s.voteRepo.GetByUserAndComment(ctx, viewerID, commentID); err == nil {
			summary.MyVote = &mine.Kind
		}
	}
	return summary, nil
}
