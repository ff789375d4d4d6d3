package database

import (
	"aesthetics-service/internal/app/config"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects and pings Redis. The caller decides whether a
// failed ping is fatal.
func NewRedisClient(driverConfig *config.DriverConfig, logger *zap.Logger) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	logger.Info("Successfully connected to redis", zap.String("addr", rdb.Options().Addr))
	return rdb, nil
}
