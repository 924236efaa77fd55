package redis_repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fintrix/fintrix-backend/internal/infra/db/mongodb/helpers"
)

// SummaryTTL bounds how stale a cached dashboard payload can get. Writes
// invalidate the key anyway; the TTL is the backstop.
var SummaryTTL = 60 * time.Second

func summaryKey(userId string) string {
	return "fintrix:summary:" + userId
}

func FindSummary(redisURL string, userId string) (string, bool, error) {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	value, err := redisClient.Get(ctx, summaryKey(userId)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error fetching summary for user %s from Redis: %w", userId, err)
	}

	return value, true, nil
}

func SaveSummary(redisURL string, userId string, payload string) error {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := redisClient.Set(ctx, summaryKey(userId), payload, SummaryTTL).Err(); err != nil {
		return fmt.Errorf("error saving summary for user %s to Redis: %w", userId, err)
	}

	return nil
}

func InvalidateSummary(redisURL string, userId string) error {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := redisClient.Del(ctx, summaryKey(userId)).Err(); err != nil {
		return fmt.Errorf("error invalidating summary for user %s in Redis: %w", userId, err)
	}

	return nil
}
