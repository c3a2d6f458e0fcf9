package services

import (
	"testing"
	"time"

	"api/database"
	"api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCounters(t *testing.T, name, email string, easy, medium, hard int) *models.User {
	t.Helper()
	user := createTestUser(t, name, email, models.RoleUser)
	require.NoError(t, database.DB.Model(user).Updates(map[string]interface{}{
		"easy_solved":           easy,
		"medium_solved":         medium,
		"hard_solved":           hard,
		"total_problems_solved": easy + medium + hard,
	}).Error)
	return user
}

func TestLeaderboardOrdering(t *testing.T) {
	setupTestDB(t)

	seedCounters(t, "Low", "low@x.com", 1, 0, 0)
	seedCounters(t, "High", "high@x.com", 2, 2, 2)
	// Same total as Tied, more hards: must rank above.
	seedCounters(t, "Hardy", "hardy@x.com", 0, 1, 2)
	seedCounters(t, "Tied", "tied@x.com", 2, 1, 0)

	entries, err := GetLeaderboard(FilterAllTime)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, "High", entries[0].Name)
	assert.Equal(t, "Hardy", entries[1].Name)
	assert.Equal(t, "Tied", entries[2].Name)
	assert.Equal(t, "Low", entries[3].Name)

	for i := 1; i < len(entries); i++ {
		a, b := entries[i-1], entries[i]
		if a.TotalProblemsSolved == b.TotalProblemsSolved {
			assert.GreaterOrEqual(t, a.HardSolved, b.HardSolved)
		} else {
			assert.Greater(t, a.TotalProblemsSolved, b.TotalProblemsSolved)
		}
	}
}

func TestLeaderboardExcludesAdmins(t *testing.T) {
	setupTestDB(t)

	seedCounters(t, "Player", "player@x.com", 1, 0, 0)
	admin := createTestUser(t, "Boss", "boss@x.com", models.RoleAdmin)
	require.NoError(t, database.DB.Model(admin).Update("total_problems_solved", 50).Error)

	entries, err := GetLeaderboard(FilterAllTime)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Player", entries[0].Name)
}

func TestLeaderboardPointsAndAvatar(t *testing.T) {
	setupTestDB(t)

	user := seedCounters(t, "Alice", "alice@x.com", 2, 1, 0)

	entries, err := GetLeaderboard("bogus-filter")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, 300, entries[0].Points)
	assert.Contains(t, entries[0].Avatar, "api.dicebear.com")
	assert.Contains(t, entries[0].Avatar, user.ID)
}

func TestLeaderboardPeriodFilter(t *testing.T) {
	setupTestDB(t)

	alice := createTestUser(t, "Alice", "alice@x.com", models.RoleUser)
	bob := createTestUser(t, "Bob", "bob@x.com", models.RoleUser)

	fresh, err := CreateChallenge("https://leetcode.com/problems/two-sum", models.DifficultyHard)
	require.NoError(t, err)

	stale := models.Challenge{Link: "https://leetcode.com/problems/old-one", Difficulty: models.DifficultyEasy}
	require.NoError(t, database.DB.Create(&stale).Error)
	require.NoError(t, database.DB.Model(&stale).Update("created_at", time.Now().AddDate(0, -2, 0)).Error)

	_, _, err = CompleteChallenge(alice.ID, fresh.ID)
	require.NoError(t, err)
	_, _, err = CompleteChallenge(bob.ID, stale.ID)
	require.NoError(t, err)

	entries, err := GetLeaderboard(FilterThisMonth)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Alice", entries[0].Name)
	assert.Equal(t, 1, entries[0].HardSolved)
	assert.Equal(t, 1, entries[0].TotalProblemsSolved)
}
