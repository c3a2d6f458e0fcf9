package database

import (
	"fmt"
	"log"
	"sync"

	"api/config"
	"api/models"
	"api/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB       *gorm.DB
	initOnce sync.Once
	initErr  error
)

// InitDB opens the database connection, migrates the models and seeds the
// default admin account. Safe to call from concurrent requests; the
// connection is opened exactly once for the lifetime of the process.
func InitDB() error {
	initOnce.Do(func() {
		dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
			config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

		DB, initErr = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if initErr != nil {
			log.Println("failed to connect database:", initErr)
			return
		}

		initErr = DB.AutoMigrate(
			&models.User{},
			&models.Challenge{},
			&models.Submission{},
		)
		if initErr != nil {
			log.Println("failed to migrate database:", initErr)
			return
		}

		Populate()
	})
	return initErr
}

// Populate seeds the default admin account if no admin exists yet
func Populate() {
	var countAdmin int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&countAdmin)
	if countAdmin > 0 {
		return
	}

	admin := models.User{
		Name:        config.AdminName,
		Email:       config.AdminEmail,
		Role:        models.RoleAdmin,
		AvatarStyle: utils.DefaultAvatarStyle,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("failed to seed admin user:", err)
		return
	}
	DB.Model(&admin).Update("avatar", utils.GenerateAvatarUrl(admin.AvatarStyle, admin.ID))
	log.Println("Default admin user created:", admin.Email)
}

// CloseDB releases the underlying connection pool on shutdown
func CloseDB() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Println("failed to access underlying connection:", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Println("failed to close database connection:", err)
	}
}
