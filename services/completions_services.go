package services

import (
	"errors"
	"fmt"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/realtime"

	"gorm.io/gorm"
)

// counterColumn maps a challenge difficulty to the user counter it feeds
func counterColumn(difficulty string) string {
	switch difficulty {
	case models.DifficultyEasy:
		return "easy_solved"
	case models.DifficultyMedium:
		return "medium_solved"
	case models.DifficultyHard:
		return "hard_solved"
	}
	return ""
}

// CompleteChallenge records that a user solved a challenge. Completion is a
// set-once event: the first call creates the submission and bumps the user's
// counters in one transaction, every later call returns the existing
// submission untouched.
func CompleteChallenge(userID, challengeID string) (*models.Challenge, *models.Submission, error) {
	var challenge models.Challenge
	if err := database.DB.First(&challenge, "id = ?", challengeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: challenge not found", ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to fetch challenge: %w", err)
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	var existing models.Submission
	if err := database.DB.Where("challenge_id = ? AND user_id = ?", challengeID, userID).
		First(&existing).Error; err == nil {
		return &challenge, &existing, nil
	}

	column := counterColumn(challenge.Difficulty)
	submission := models.Submission{
		ChallengeID: challengeID,
		UserID:      userID,
		SubmittedAt: time.Now(),
	}

	start := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}
		// Atomic increments; never read-modify-write from memory.
		return tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumns(map[string]interface{}{
				"total_problems_solved": gorm.Expr("total_problems_solved + 1"),
				column:                  gorm.Expr(column + " + 1"),
			}).Error
	})
	if err != nil {
		// A duplicate request racing past the existence check hits the
		// (challenge, user) unique index; treat it as the idempotent case.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := database.DB.Where("challenge_id = ? AND user_id = ?", challengeID, userID).
				First(&existing).Error; err != nil {
				return nil, nil, fmt.Errorf("failed to fetch submission: %w", err)
			}
			return &challenge, &existing, nil
		}
		return nil, nil, fmt.Errorf("failed to record completion: %w", err)
	}
	metrics.RecordDBOperation("complete", "submissions", start)
	metrics.CompletionsTotal.WithLabelValues(challenge.Difficulty).Inc()

	InvalidateLeaderboardCache()
	realtime.BroadcastCompletion(realtime.CompletionEvent{
		ChallengeID: challengeID,
		UserID:      userID,
		UserName:    user.Name,
		Difficulty:  challenge.Difficulty,
		SubmittedAt: submission.SubmittedAt,
	})

	if err := database.DB.Preload("Submissions.User").First(&challenge, "id = ?", challengeID).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to reload challenge: %w", err)
	}
	return &challenge, &submission, nil
}
