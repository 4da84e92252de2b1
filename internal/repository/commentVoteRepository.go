package repository

import (
	"context"

	"gamerank/internal/models"

	"gorm.io/gorm"
)

type CommentVoteRepository interface {
	Create(ctx context.Context, vote *models.CommentVote) error
	GetByUserAndComment(ctx context.Context, userID string, commentID int64) (*models.CommentVote, error)
	UpdateKind(ctx context.Context, voteID int64, kind string) error
	CountByKind(ctx context.Context, commentID int64, kind string) (int64, error)
}

type commentVoteRepository struct {
	db *gorm.DB
}

func NewCommentVoteRepository(db *gorm.DB) CommentVoteRepository {
	return &commentVoteRepository{db: db}
}

// Create a new vote. The unique (user_id, comment_id) index rejects a
// concurrent duplicate; callers fall back to the update path on conflict.
func (r *commentVoteRepository) Create(ctx context.Context, vote *models.CommentVote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

func (r *commentVoteRepository) GetByUserAndComment(ctx context.Context, userID string, commentID int64) (*models.CommentVote, error) {
	var vote models.CommentVote
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// UpdateKind overwrites the kind of an existing vote
func (r *commentVoteRepository) UpdateKind(ctx context.Context, voteID int64, kind string) error {
	return r.db.WithContext(ctx).Model(&models.CommentVote{}).
		Where("id = ?", voteID).
		Update("kind", kind).Error
}

// CountByKind counts votes of one kind for a comment. Counts are always
// recomputed from the vote table, never incrementally maintained.
func (r *commentVoteRepository) CountByKind(ctx context.Context, commentID int64, kind string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CommentVote{}).
		Where("comment_id = ? AND kind = ?", commentID, kind).
		Count(&count).Error
	return count, err
}
