package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission records that a user completed a challenge. The composite unique
// index keeps at most one submission per (challenge, user) pair, which is what
// makes completion idempotent under concurrent requests.
type Submission struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	ChallengeID string    `gorm:"type:uuid;not null;column:challenge_id;uniqueIndex:idx_challenge_user" json:"challenge_id"`
	UserID      string    `gorm:"type:uuid;not null;column:user_id;uniqueIndex:idx_challenge_user" json:"user_id"`
	SubmittedAt time.Time `gorm:"not null;column:submitted_at" json:"submittedAt"`
	User        *User     `gorm:"foreignKey:UserID" json:"user"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
