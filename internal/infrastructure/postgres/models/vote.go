package models

import "time"

type VoteModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	SubjectID string    `gorm:"type:text;not null;uniqueIndex:ux_vote_subject_user,priority:1"`
	UserID    string    `gorm:"type:text;not null;uniqueIndex:ux_vote_subject_user,priority:2"`
	IsUpvote  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (VoteModel) TableName() string {
	return "votes"
}

// SubjectScoreModel - votable subject with its cached counters
type SubjectScoreModel struct {
	SubjectID string    `gorm:"primaryKey;type:text"`
	Kind      string    `gorm:"type:text;not null"`
	Upvotes   int64     `gorm:"not null;default:0"`
	Downvotes int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (SubjectScoreModel) TableName() string {
	return "vote_subjects"
}
