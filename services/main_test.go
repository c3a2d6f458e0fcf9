package services

import (
	"fmt"
	"testing"

	"api/config"
	"api/database"
	"api/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package-level connection at a fresh in-memory
// database for one test
func setupTestDB(t *testing.T) {
	t.Helper()

	config.ChallengeLinkPattern = "https://leetcode.com/problems/"
	config.StreakStrict = false

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Challenge{}, &models.Submission{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.DB = db
	database.RDB = nil
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		database.DB = nil
	})
}

func createTestUser(t *testing.T, name, email, role string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Role: role}
	if err := database.DB.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}
