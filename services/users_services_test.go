package services

import (
	"testing"
	"time"

	"api/database"
	"api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertUserCreatesOnFirstSignIn(t *testing.T) {
	setupTestDB(t)

	user, err := UpsertUser("alice@x.com", "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, 0, user.TotalProblemsSolved)
	assert.Contains(t, user.Avatar, "api.dicebear.com")

	again, err := UpsertUser("alice@x.com", "Alice Liddell")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, "Alice Liddell", again.Name)

	var count int64
	database.DB.Model(&models.User{}).Where("email = ?", "alice@x.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGetUserStatsRank(t *testing.T) {
	setupTestDB(t)

	alice := seedCounters(t, "Alice", "alice@x.com", 3, 0, 0)
	seedCounters(t, "Bob", "bob@x.com", 5, 0, 0)
	seedCounters(t, "Carol", "carol@x.com", 1, 0, 0)

	stats, err := GetUserStats(alice)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Rank)
	assert.Equal(t, 3, stats.TotalProblemsSolved)
}

func TestGetUserHistory(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "Alice", "alice@x.com", models.RoleUser)
	easy, err := CreateChallenge("https://leetcode.com/problems/two-sum", models.DifficultyEasy)
	require.NoError(t, err)
	hard, err := CreateChallenge("https://leetcode.com/problems/median-arrays", models.DifficultyHard)
	require.NoError(t, err)

	_, _, err = CompleteChallenge(user.ID, easy.ID)
	require.NoError(t, err)
	_, _, err = CompleteChallenge(user.ID, hard.ID)
	require.NoError(t, err)

	history, err := GetUserHistory(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, entry := range history {
		assert.NotEmpty(t, entry.Link)
		assert.NotEmpty(t, entry.Difficulty)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "Alice", "alice@x.com", models.RoleUser)
	assert.ErrorIs(t, UpdateProfile(user, "A"), ErrValidation)

	require.NoError(t, UpdateProfile(user, "Alice Liddell"))
	var got models.User
	require.NoError(t, database.DB.First(&got, "id = ?", user.ID).Error)
	assert.Equal(t, "Alice Liddell", got.Name)
}

func TestUpdateAvatar(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "Alice", "alice@x.com", models.RoleUser)
	assert.ErrorIs(t, UpdateAvatar(user, "not-a-style"), ErrValidation)

	require.NoError(t, UpdateAvatar(user, "pixel-art"))
	assert.Contains(t, user.Avatar, "pixel-art")
	assert.Contains(t, user.Avatar, user.ID)
}

func TestSetEligibility(t *testing.T) {
	setupTestDB(t)

	_, err := SetEligibility("ghost@x.com", true)
	assert.ErrorIs(t, err, ErrNotFound)

	createTestUser(t, "Alice", "alice@x.com", models.RoleUser)
	user, err := SetEligibility("alice@x.com", true)
	require.NoError(t, err)
	assert.True(t, user.IsEligibleForAdmin)
}

func TestRequestAdminRotation(t *testing.T) {
	setupTestDB(t)

	alice := createTestUser(t, "Alice", "alice@x.com", models.RoleUser)
	assert.ErrorIs(t, RequestAdminRotation(alice), ErrForbidden)

	_, err := SetEligibility("alice@x.com", true)
	require.NoError(t, err)
	alice.IsEligibleForAdmin = true

	require.NoError(t, RequestAdminRotation(alice))
	assert.True(t, alice.IsAdminToday)
	require.NotNil(t, alice.LastAdminDate)

	// Cooldown blocks a second request within 7 days.
	assert.ErrorIs(t, RequestAdminRotation(alice), ErrValidation)

	// A different eligible user taking the slot clears the previous holder.
	bob := createTestUser(t, "Bob", "bob@x.com", models.RoleUser)
	_, err = SetEligibility("bob@x.com", true)
	require.NoError(t, err)
	bob.IsEligibleForAdmin = true
	require.NoError(t, RequestAdminRotation(bob))

	var got models.User
	require.NoError(t, database.DB.First(&got, "id = ?", alice.ID).Error)
	assert.False(t, got.IsAdminToday)
}

func TestRequestAdminRotationAfterCooldown(t *testing.T) {
	setupTestDB(t)

	alice := createTestUser(t, "Alice", "alice@x.com", models.RoleUser)
	_, err := SetEligibility("alice@x.com", true)
	require.NoError(t, err)
	alice.IsEligibleForAdmin = true

	past := time.Now().AddDate(0, 0, -8)
	alice.LastAdminDate = &past
	require.NoError(t, database.DB.Model(alice).Update("last_admin_date", past).Error)

	assert.NoError(t, RequestAdminRotation(alice))
}

func TestResetPoints(t *testing.T) {
	setupTestDB(t)

	seedCounters(t, "Alice", "alice@x.com", 2, 1, 1)
	seedCounters(t, "Bob", "bob@x.com", 0, 3, 0)

	updated, err := ResetPoints()
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)

	var users []models.User
	require.NoError(t, database.DB.Find(&users).Error)
	for _, user := range users {
		assert.Zero(t, user.TotalProblemsSolved)
		assert.Zero(t, user.EasySolved+user.MediumSolved+user.HardSolved)
	}
}

func TestMigratePoints(t *testing.T) {
	setupTestDB(t)

	seedCounters(t, "Alice", "alice@x.com", 2, 1, 0)

	updated, err := MigratePoints()
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated)

	var got models.User
	require.NoError(t, database.DB.First(&got, "email = ?", "alice@x.com").Error)
	assert.Equal(t, 300, got.Points)
}
