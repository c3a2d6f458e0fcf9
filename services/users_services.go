package services

import (
	"errors"
	"fmt"
	"time"

	"api/database"
	"api/models"
	"api/utils"

	"gorm.io/gorm"
)

const adminCooldownDays = 7

// UpsertUser resolves a verified identity to a local account, creating it on
// first sign-in and refreshing the display name otherwise
func UpsertUser(email, name string) (*models.User, error) {
	var user models.User
	err := database.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		if name != "" && name != user.Name {
			user.Name = name
			if err := database.DB.Model(&user).Update("name", name).Error; err != nil {
				return nil, fmt.Errorf("failed to update user: %w", err)
			}
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	user = models.User{
		Name:        name,
		Email:       email,
		Role:        models.RoleUser,
		AvatarStyle: utils.RandomAvatarStyle(),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		// Two first sign-ins racing; the earlier insert wins.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
				return nil, fmt.Errorf("failed to fetch user: %w", err)
			}
			return &user, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.Avatar = utils.GenerateAvatarUrl(user.AvatarStyle, user.ID)
	if err := database.DB.Model(&user).Update("avatar", user.Avatar).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail fetches a user by email
func GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// UserStats carries a user's counters plus their live rank and streak
type UserStats struct {
	TotalProblemsSolved int    `json:"totalProblemsSolved"`
	EasySolved          int    `json:"easySolved"`
	MediumSolved        int    `json:"mediumSolved"`
	HardSolved          int    `json:"hardSolved"`
	Rank                int64  `json:"rank"`
	Streak              Streak `json:"streak"`
}

// GetUserStats computes counters, rank and streak for a user
func GetUserStats(user *models.User) (*UserStats, error) {
	var ahead int64
	if err := database.DB.Model(&models.User{}).
		Where("total_problems_solved > ?", user.TotalProblemsSolved).
		Count(&ahead).Error; err != nil {
		return nil, fmt.Errorf("failed to compute rank: %w", err)
	}

	streak, err := GetStreak(user.ID)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		TotalProblemsSolved: user.TotalProblemsSolved,
		EasySolved:          user.EasySolved,
		MediumSolved:        user.MediumSolved,
		HardSolved:          user.HardSolved,
		Rank:                ahead + 1,
		Streak:              streak,
	}, nil
}

// HistoryEntry is one completed challenge in a user's history
type HistoryEntry struct {
	ChallengeID string    `json:"challenge_id"`
	Link        string    `json:"link"`
	Difficulty  string    `json:"difficulty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// GetUserHistory returns the user's most recent completions, newest first
func GetUserHistory(userID string, limit int) ([]HistoryEntry, error) {
	var history []HistoryEntry
	if err := database.DB.Raw(`
		SELECT c.id AS challenge_id, c.link, c.difficulty, s.submitted_at
		FROM submissions s
		JOIN challenges c ON c.id = s.challenge_id
		WHERE s.user_id = ?
		ORDER BY s.submitted_at DESC
		LIMIT ?
	`, userID, limit).Scan(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	return history, nil
}

// UpdateProfile renames a user
func UpdateProfile(user *models.User, name string) error {
	if len(name) < 2 {
		return fmt.Errorf("%w: name must be at least 2 characters long", ErrValidation)
	}
	user.Name = name
	if err := database.DB.Model(user).Update("name", name).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// UpdateAvatar switches a user to a new avatar style and regenerates the URL
func UpdateAvatar(user *models.User, style string) error {
	if !utils.ValidAvatarStyle(style) {
		return fmt.Errorf("%w: unknown avatar style", ErrValidation)
	}
	user.AvatarStyle = style
	user.Avatar = utils.GenerateAvatarUrl(style, user.ID)
	if err := database.DB.Model(user).Updates(map[string]interface{}{
		"avatar_style": user.AvatarStyle,
		"avatar":       user.Avatar,
	}).Error; err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	return nil
}

// SetEligibility toggles whether a user may request the admin rotation
func SetEligibility(userEmail string, isEligible bool) (*models.User, error) {
	user, err := GetUserByEmail(userEmail)
	if err != nil {
		return nil, err
	}
	user.IsEligibleForAdmin = isEligible
	if err := database.DB.Model(user).Update("is_eligible_for_admin", isEligible).Error; err != nil {
		return nil, fmt.Errorf("failed to update eligibility: %w", err)
	}
	return user, nil
}

// ListEligibility returns every user with their eligibility status, most
// problems solved first
func ListEligibility() ([]models.User, error) {
	var users []models.User
	if err := database.DB.
		Select("id, email, name, is_eligible_for_admin, total_problems_solved").
		Order("total_problems_solved DESC").
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// RequestAdminRotation hands the daily admin slot to an eligible user. A user
// can hold the slot at most once every 7 days, and only one user holds it at
// a time.
func RequestAdminRotation(user *models.User) error {
	if !user.IsEligibleForAdmin {
		return fmt.Errorf("%w: you are not eligible to become an admin", ErrForbidden)
	}

	today := utils.StartOfDay(time.Now())
	if user.LastAdminDate != nil {
		daysSince := int(today.Sub(utils.StartOfDay(*user.LastAdminDate)).Hours() / 24)
		if daysSince < adminCooldownDays {
			return fmt.Errorf("%w: you can only be admin once every %d days", ErrValidation, adminCooldownDays)
		}
	}

	now := time.Now()
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("is_admin_today = ?", true).
			Update("is_admin_today", false).Error; err != nil {
			return fmt.Errorf("failed to reset admin rotation: %w", err)
		}
		if err := tx.Model(user).Updates(map[string]interface{}{
			"is_admin_today":  true,
			"last_admin_date": now,
		}).Error; err != nil {
			return fmt.Errorf("failed to assign admin rotation: %w", err)
		}
		user.IsAdminToday = true
		user.LastAdminDate = &now
		return nil
	})
}

// ResetPoints zeroes every user's solved counters
func ResetPoints() (int64, error) {
	result := database.DB.Model(&models.User{}).Where("1 = 1").Updates(map[string]interface{}{
		"total_problems_solved": 0,
		"easy_solved":           0,
		"medium_solved":         0,
		"hard_solved":           0,
	})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reset counters: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// MigratePoints backfills the points column from the solved totals
func MigratePoints() (int64, error) {
	result := database.DB.Model(&models.User{}).Where("points = 0 AND total_problems_solved > 0").
		Update("points", gorm.Expr("total_problems_solved * ?", PointsPerProblem))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to migrate points: %w", result.Error)
	}
	return result.RowsAffected, nil
}
