package models

// Vote kinds. Re-voting overwrites the kind, it never accumulates.
const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

type CommentVote struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_comment"`
	CommentID int64  `json:"comment_id" gorm:"not null;uniqueIndex:idx_votes_user_comment"`
	Kind      string `json:"kind" gorm:"size:10;not null;check:kind IN ('like','dislike')"`

	// Associations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Comment Comment `json:"comment,omitempty" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE;"`
}

func (CommentVote) TableName() string {
	return "comment_votes"
}
