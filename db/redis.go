package db

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

func Get(key string) (string, error) {
	return Redis.Get(Ctx, key).Result()
}

func SetWithTTL(key string, value string, ttl time.Duration) error {
	return Redis.Set(Ctx, key, value, ttl).Err()
}

// IsMiss reports whether err is a cache miss rather than a real failure.
func IsMiss(err error) bool {
	return err == redis.Nil
}
