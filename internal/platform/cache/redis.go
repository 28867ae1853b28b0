package cache

import (
	"context"

	"learning_iq/internal/platform/config"
	"learning_iq/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

func ConnectRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	ctx := context.Background()
	if _, err := RDB.Ping(ctx).Result(); err != nil {
		logger.Fatal("could not connect to Redis", "err", err)
	}
	logger.Info("connected to Redis", "addr", config.AppConfig.RedisAddr)
}

func CloseRedis() {
	if RDB != nil {
		RDB.Close()
		logger.Info("redis connection closed")
	}
}
