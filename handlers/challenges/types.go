package challenges

import (
	"time"

	"api/models"
)

// Constants for error messages
const (
	ErrChallengeNotFound       = "Challenge not found"
	ErrUserNotFound            = "User not found"
	ErrInvalidRequest          = "Invalid request data"
	ErrMissingChallengeID      = "Challenge id is required"
	ErrFailedFetchChallenges   = "Failed to fetch challenges"
	ErrFailedCreateChallenge   = "Failed to create challenge"
	ErrFailedDeleteChallenge   = "Failed to delete challenge"
	ErrFailedCompleteChallenge = "Failed to complete challenge"
)

// CreateChallengeRequest model for posting a new challenge
type CreateChallengeRequest struct {
	Link       string `json:"link" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
}

// CompleteChallengeRequest model for marking a challenge complete
type CompleteChallengeRequest struct {
	ChallengeID string `json:"challengeId" binding:"required"`
}

// TodayChallenge is a challenge from today's window decorated with the
// caller's completion status
type TodayChallenge struct {
	ID          string               `json:"id"`
	Link        string               `json:"link"`
	Difficulty  string               `json:"difficulty"`
	CreatedAt   time.Time            `json:"createdAt"`
	Submissions []*models.Submission `json:"submissions"`
	IsCompleted bool                 `json:"isCompleted"`
}
