package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Package-level configuration values, loaded once at startup from the
// environment (a .env file is honored when present).
var (
	ServerPort string
	ClientUrl  string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// JWTSecret signs the session cookie issued by this API.
	JWTSecret string
	// IdentitySecret verifies identity assertions coming from the external
	// identity provider.
	IdentitySecret string

	AdminEmail string
	AdminName  string

	// ChallengeLinkPattern is the URL prefix a challenge link must match.
	ChallengeLinkPattern string

	// LeaderboardCacheTTL bounds how stale a cached leaderboard may be.
	LeaderboardCacheTTL time.Duration

	// StreakStrict switches the streak endpoint to the true
	// consecutive-day computation instead of the legacy 2-day lookback.
	StreakStrict bool
)

// LoadConfig reads the environment into the package variables.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	ClientUrl = getEnv("CLIENT_URL", "http://localhost:3000")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "challenges")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB = getEnvAsInt("REDIS_DB", 0)

	JWTSecret = getEnv("JWT_SECRET", "dev-secret")
	IdentitySecret = getEnv("IDENTITY_SECRET", JWTSecret)

	AdminEmail = getEnv("ADMIN_EMAIL", "admin@admin.com")
	AdminName = getEnv("ADMIN_NAME", "Admin")

	ChallengeLinkPattern = getEnv("CHALLENGE_LINK_PATTERN", "https://leetcode.com/problems/")

	LeaderboardCacheTTL = time.Duration(getEnvAsInt("LEADERBOARD_CACHE_TTL_SECONDS", 30)) * time.Second
	StreakStrict = getEnvAsBool("STREAK_STRICT", false)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
