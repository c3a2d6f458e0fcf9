package services

import (
	"fmt"
	"sort"
	"time"

	"api/config"
	"api/database"
	"api/models"
	"api/utils"
)

// Streak summarizes a user's consecutive-day completion run
type Streak struct {
	Current       int    `json:"current"`
	Longest       int    `json:"longest"`
	LastCompleted string `json:"lastCompleted"`
}

// GetStreak derives the streak from the user's submission history. A
// completion's calendar day is the day its challenge was posted.
func GetStreak(userID string) (Streak, error) {
	var completionDays []time.Time
	if err := database.DB.Model(&models.Challenge{}).
		Joins("JOIN submissions ON submissions.challenge_id = challenges.id").
		Where("submissions.user_id = ?", userID).
		Order("challenges.created_at DESC").
		Pluck("challenges.created_at", &completionDays).Error; err != nil {
		return Streak{}, fmt.Errorf("failed to fetch completions: %w", err)
	}

	if config.StreakStrict {
		return ComputeStrictStreak(completionDays, time.Now()), nil
	}
	return ComputeStreak(completionDays, time.Now()), nil
}

// ComputeStreak reproduces the shipped streak behavior: a bounded two-day
// lookback (current is never more than 2) and a longest value approximated by
// the total completion count. Kept as the default so existing clients see
// unchanged numbers; ComputeStrictStreak is the corrected algorithm.
func ComputeStreak(completionDays []time.Time, now time.Time) Streak {
	if len(completionDays) == 0 {
		return Streak{}
	}

	today := utils.StartOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	completedToday := false
	completedYesterday := false
	for _, day := range completionDays {
		local := day.In(now.Location())
		if utils.SameDay(local, today) {
			completedToday = true
		}
		if utils.SameDay(local, yesterday) {
			completedYesterday = true
		}
	}

	streak := Streak{}
	if completedToday {
		streak.Current = 1
		streak.LastCompleted = today.Format(time.RFC3339)
	}
	if completedToday && completedYesterday {
		streak.Current = 2
	}

	streak.Longest = len(completionDays)
	if streak.Current > streak.Longest {
		streak.Longest = streak.Current
	}
	return streak
}

// ComputeStrictStreak scans distinct completion days in ascending order and
// counts maximal runs of consecutive calendar days. Current counts back from
// today; a run that ended before today contributes only to longest.
func ComputeStrictStreak(completionDays []time.Time, now time.Time) Streak {
	if len(completionDays) == 0 {
		return Streak{}
	}

	const dayKey = "2006-01-02"
	seen := make(map[string]bool, len(completionDays))
	days := make([]time.Time, 0, len(completionDays))
	for _, day := range completionDays {
		d := utils.StartOfDay(day.In(now.Location()))
		if !seen[d.Format(dayKey)] {
			seen[d.Format(dayKey)] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if utils.SameDay(days[i-1].AddDate(0, 0, 1), days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	today := utils.StartOfDay(now)
	current := 0
	for d := today; seen[d.Format(dayKey)]; d = d.AddDate(0, 0, -1) {
		current++
	}

	last := days[len(days)-1]
	return Streak{
		Current:       current,
		Longest:       longest,
		LastCompleted: last.Format(time.RFC3339),
	}
}
