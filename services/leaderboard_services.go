package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"api/config"
	"api/database"
	"api/metrics"
	"api/models"
	"api/utils"

	"github.com/redis/go-redis/v9"
)

// Leaderboard period filters
const (
	FilterAllTime   = "all-time"
	FilterThisWeek  = "this-week"
	FilterThisMonth = "this-month"
)

// PointsPerProblem is the flat per-problem score. Difficulty does not weight
// the formula; per-difficulty counts only break ties.
const PointsPerProblem = 100

const leaderboardLimit = 100

// LeaderboardEntry is one row of the standings
type LeaderboardEntry struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	TotalProblemsSolved int    `json:"totalProblemsSolved"`
	EasySolved          int    `json:"easySolved"`
	MediumSolved        int    `json:"mediumSolved"`
	HardSolved          int    `json:"hardSolved"`
	Points              int    `json:"points"`
	Avatar              string `json:"avatar"`
	AvatarStyle         string `json:"avatarStyle"`
}

// NormalizeFilter coerces an unknown filter to all-time
func NormalizeFilter(filter string) string {
	switch filter {
	case FilterThisWeek, FilterThisMonth:
		return filter
	default:
		return FilterAllTime
	}
}

func leaderboardCacheKey(filter string) string {
	return "leaderboard:" + filter
}

// GetLeaderboard returns up to 100 ranked entries for the given period
// filter, excluding admins. Results are cached briefly in Redis when it is
// available.
func GetLeaderboard(filter string) ([]LeaderboardEntry, error) {
	filter = NormalizeFilter(filter)

	if database.RDB != nil {
		cached, err := database.RDB.Get(context.Background(), leaderboardCacheKey(filter)).Result()
		if err == nil {
			var entries []LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				metrics.CacheHits.Inc()
				return entries, nil
			}
		}
		// Cache trouble is not a leaderboard failure.
		if err != nil && err != redis.Nil {
			log.Println("leaderboard cache read failed:", err)
		}
		metrics.CacheMisses.Inc()
	}

	entries, err := queryLeaderboard(filter)
	if err != nil {
		return nil, err
	}

	if database.RDB != nil {
		if payload, err := json.Marshal(entries); err == nil {
			database.RDB.Set(context.Background(), leaderboardCacheKey(filter), payload, config.LeaderboardCacheTTL)
		}
	}
	return entries, nil
}

func queryLeaderboard(filter string) ([]LeaderboardEntry, error) {
	start := time.Now()
	var entries []LeaderboardEntry

	switch filter {
	case FilterAllTime:
		if err := database.DB.Model(&models.User{}).
			Select("id, name, email, total_problems_solved, easy_solved, medium_solved, hard_solved, avatar_style").
			Where("role <> ?", models.RoleAdmin).
			Order("total_problems_solved DESC, hard_solved DESC, medium_solved DESC, easy_solved DESC").
			Limit(leaderboardLimit).
			Scan(&entries).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
		}
	default:
		// Period standings count only submissions whose challenge falls in
		// the window, bucketed live rather than read from the counters.
		since := periodStart(filter)
		if err := database.DB.Raw(`
			SELECT u.id, u.name, u.email, u.avatar_style,
				COUNT(s.id) AS total_problems_solved,
				SUM(CASE WHEN c.difficulty = 'Easy' THEN 1 ELSE 0 END) AS easy_solved,
				SUM(CASE WHEN c.difficulty = 'Medium' THEN 1 ELSE 0 END) AS medium_solved,
				SUM(CASE WHEN c.difficulty = 'Hard' THEN 1 ELSE 0 END) AS hard_solved
			FROM users u
			JOIN submissions s ON s.user_id = u.id
			JOIN challenges c ON c.id = s.challenge_id
			WHERE u.role <> ? AND c.created_at >= ?
			GROUP BY u.id, u.name, u.email, u.avatar_style
			ORDER BY total_problems_solved DESC, hard_solved DESC, medium_solved DESC, easy_solved DESC
			LIMIT ?
		`, models.RoleAdmin, since, leaderboardLimit).Scan(&entries).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
		}
	}
	metrics.RecordDBOperation("leaderboard", "users", start)

	for i := range entries {
		entries[i].Points = entries[i].TotalProblemsSolved * PointsPerProblem
		if entries[i].AvatarStyle == "" {
			entries[i].AvatarStyle = utils.DefaultAvatarStyle
		}
		entries[i].Avatar = utils.GenerateAvatarUrl(entries[i].AvatarStyle, entries[i].ID)
	}
	return entries, nil
}

func periodStart(filter string) time.Time {
	now := time.Now()
	if filter == FilterThisWeek {
		return utils.StartOfWeek(now)
	}
	return utils.StartOfMonth(now)
}

// InvalidateLeaderboardCache drops all cached standings, called after every
// completion so watchers never see counters lag the feed
func InvalidateLeaderboardCache() {
	if database.RDB == nil {
		return
	}
	database.RDB.Del(context.Background(),
		leaderboardCacheKey(FilterAllTime),
		leaderboardCacheKey(FilterThisWeek),
		leaderboardCacheKey(FilterThisMonth),
	)
}
