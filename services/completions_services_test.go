package services

import (
	"testing"

	"api/database"
	"api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reloadUser(t *testing.T, id string) models.User {
	t.Helper()
	var user models.User
	require.NoError(t, database.DB.First(&user, "id = ?", id).Error)
	return user
}

func TestCompleteChallenge(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "Alice", "alice@x.com", models.RoleUser)
	challenge, err := CreateChallenge("https://leetcode.com/problems/two-sum", models.DifficultyEasy)
	require.NoError(t, err)

	updated, submission, err := CompleteChallenge(user.ID, challenge.ID)
	require.NoError(t, err)
	require.NotNil(t, submission)
	assert.Equal(t, user.ID, submission.UserID)
	assert.Len(t, updated.Submissions, 1)

	got := reloadUser(t, user.ID)
	assert.Equal(t, 1, got.EasySolved)
	assert.Equal(t, 0, got.MediumSolved)
	assert.Equal(t, 0, got.HardSolved)
	assert.Equal(t, 1, got.TotalProblemsSolved)
}

func TestCompleteChallengeIdempotent(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "Alice", "alice@x.com", models.RoleUser)
	challenge, err := CreateChallenge("https://leetcode.com/problems/two-sum", models.DifficultyEasy)
	require.NoError(t, err)

	_, first, err := CompleteChallenge(user.ID, challenge.ID)
	require.NoError(t, err)

	_, second, err := CompleteChallenge(user.ID, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got := reloadUser(t, user.ID)
	assert.Equal(t, 1, got.TotalProblemsSolved)
	assert.Equal(t, 1, got.EasySolved)

	var count int64
	database.DB.Model(&models.Submission{}).
		Where("challenge_id = ? AND user_id = ?", challenge.ID, user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCompleteChallengeCounterInvariant(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "Alice", "alice@x.com", models.RoleUser)
	links := map[string]string{
		"https://leetcode.com/problems/two-sum":         models.DifficultyEasy,
		"https://leetcode.com/problems/add-two-numbers": models.DifficultyMedium,
		"https://leetcode.com/problems/median-arrays":   models.DifficultyHard,
		"https://leetcode.com/problems/valid-anagram":   models.DifficultyEasy,
	}
	for link, difficulty := range links {
		challenge, err := CreateChallenge(link, difficulty)
		require.NoError(t, err)
		_, _, err = CompleteChallenge(user.ID, challenge.ID)
		require.NoError(t, err)
	}

	got := reloadUser(t, user.ID)
	assert.Equal(t, got.EasySolved+got.MediumSolved+got.HardSolved, got.TotalProblemsSolved)
	assert.Equal(t, 4, got.TotalProblemsSolved)
	assert.Equal(t, 2, got.EasySolved)
	assert.Equal(t, 1, got.MediumSolved)
	assert.Equal(t, 1, got.HardSolved)
}

func TestCompleteChallengeNotFound(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "Alice", "alice@x.com", models.RoleUser)
	challenge, err := CreateChallenge("https://leetcode.com/problems/two-sum", models.DifficultyEasy)
	require.NoError(t, err)

	_, _, err = CompleteChallenge(user.ID, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = CompleteChallenge("00000000-0000-0000-0000-000000000000", challenge.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got := reloadUser(t, user.ID)
	assert.Equal(t, 0, got.TotalProblemsSolved)
}
