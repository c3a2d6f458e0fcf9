package database

import (
	"context"
	"log"

	"api/config"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

// InitRedis connects the cache client. A missing Redis is not fatal: the
// leaderboard falls back to querying the database on every request.
func InitRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	if _, err := RDB.Ping(context.Background()).Result(); err != nil {
		log.Println("could not connect to Redis, leaderboard caching disabled:", err)
		RDB = nil
		return
	}
	log.Println("Connected to Redis")
}

// CloseRedis closes the cache client on shutdown
func CloseRedis() {
	if RDB != nil {
		if err := RDB.Close(); err != nil {
			log.Println("failed to close Redis connection:", err)
		}
	}
}
