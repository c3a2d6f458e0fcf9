package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Challenge difficulties
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Challenge represents an externally-hosted problem posted for a given day
type Challenge struct {
	ID          string        `gorm:"type:uuid;primary_key" json:"id"`
	Link        string        `gorm:"type:varchar(512);not null;uniqueIndex" json:"link"`
	Difficulty  string        `gorm:"type:varchar(20);not null" json:"difficulty"`
	CreatedAt   time.Time     `json:"createdAt"`
	Submissions []*Submission `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE" json:"submissions"`
}

func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ValidDifficulty reports whether d is one of the accepted difficulty values
func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}
