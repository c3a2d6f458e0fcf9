package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"api/config"
	"api/database"
	"api/metrics"
	"api/models"
	"api/utils"

	"gorm.io/gorm"
)

// ValidateChallengeLink checks that link is a well-formed URL pointing at the
// configured problem site
func ValidateChallengeLink(link string) error {
	parsed, err := url.Parse(link)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: link is not a valid URL", ErrValidation)
	}
	if !strings.HasPrefix(link, config.ChallengeLinkPattern) || len(link) == len(config.ChallengeLinkPattern) {
		return fmt.Errorf("%w: link must point to a problem on %s", ErrValidation, config.ChallengeLinkPattern)
	}
	return nil
}

// CreateChallenge creates a challenge for an external problem link
func CreateChallenge(link, difficulty string) (*models.Challenge, error) {
	if !models.ValidDifficulty(difficulty) {
		return nil, fmt.Errorf("%w: difficulty must be Easy, Medium or Hard", ErrValidation)
	}
	if err := ValidateChallengeLink(link); err != nil {
		return nil, err
	}

	var existing models.Challenge
	if err := database.DB.Where("link = ?", link).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: a challenge with this link already exists", ErrDuplicate)
	}

	challenge := models.Challenge{
		Link:        link,
		Difficulty:  difficulty,
		Submissions: []*models.Submission{},
	}
	start := time.Now()
	if err := database.DB.Create(&challenge).Error; err != nil {
		// A concurrent create can slip past the pre-check; the unique index
		// on link is authoritative.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: a challenge with this link already exists", ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}
	metrics.RecordDBOperation("create", "challenges", start)

	return &challenge, nil
}

// DeleteChallenge removes a challenge and all of its submissions in one
// transaction, returning the removed record
func DeleteChallenge(id string) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := database.DB.Preload("Submissions").First(&challenge, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: challenge not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch challenge: %w", err)
	}

	start := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("challenge_id = ?", id).Delete(&models.Submission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Challenge{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete challenge: %w", err)
	}
	metrics.RecordDBOperation("delete", "challenges", start)

	return &challenge, nil
}

// ListChallenges returns all challenges, newest first
func ListChallenges() ([]models.Challenge, error) {
	var challenges []models.Challenge
	if err := database.DB.Preload("Submissions.User").Order("created_at DESC").Find(&challenges).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch challenges: %w", err)
	}
	return challenges, nil
}

// TodayChallenges returns the challenges created in [startOfLocalDay, +24h),
// newest first
func TodayChallenges() ([]models.Challenge, error) {
	today := utils.StartOfDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	var challenges []models.Challenge
	if err := database.DB.Preload("Submissions.User").
		Where("created_at >= ? AND created_at < ?", today, tomorrow).
		Order("created_at DESC").
		Find(&challenges).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch today's challenges: %w", err)
	}
	return challenges, nil
}

// UserCompletedChallenge reports whether the user has a submission on the
// challenge
func UserCompletedChallenge(challenge *models.Challenge, userID string) bool {
	for _, submission := range challenge.Submissions {
		if submission.UserID == userID {
			return true
		}
	}
	return false
}
