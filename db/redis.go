// db/redis.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
)

var RedisClient *redis.Client

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func CacheAttribute(ctx context.Context, attribute *model.Attribute) error {
	attributeJSON, err := json.Marshal(attribute)
	if err != nil {
		return fmt.Errorf("failed to marshal attribute: %w", err)
	}

	key := fmt.Sprintf("attribute:%s", attribute.Slug)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, attributeJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache attribute: %w", err)
	}

	logger.Debug("Attribute cached successfully", zap.String("slug", attribute.Slug))
	return nil
}

func GetCachedAttribute(ctx context.Context, slug string) (*model.Attribute, error) {
	key := fmt.Sprintf("attribute:%s", slug)
	attributeJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Attribute not found in cache", zap.String("slug", slug))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get attribute from cache: %w", err)
	}

	var attribute model.Attribute
	err = json.Unmarshal([]byte(attributeJSON), &attribute)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal attribute: %w", err)
	}

	logger.Debug("Attribute retrieved from cache", zap.String("slug", slug))
	return &attribute, nil
}

func DeleteCachedAttribute(ctx context.Context, slug string) error {
	key := fmt.Sprintf("attribute:%s", slug)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete attribute from cache: %w", err)
	}
	logger.Debug("Attribute deleted from cache", zap.String("slug", slug))
	return nil
}

func CacheUserType(ctx context.Context, userType *model.UserTypeConfig) error {
	userTypeJSON, err := json.Marshal(userType)
	if err != nil {
		return fmt.Errorf("failed to marshal user type: %w", err)
	}

	key := fmt.Sprintf("userType:%s", userType.Slug)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, userTypeJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache user type: %w", err)
	}

	logger.Debug("User type cached successfully", zap.String("slug", userType.Slug))
	return nil
}

func GetCachedUserType(ctx context.Context, slug string) (*model.UserTypeConfig, error) {
	key := fmt.Sprintf("userType:%s", slug)
	userTypeJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("User type not found in cache", zap.String("slug", slug))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user type from cache: %w", err)
	}

	var userType model.UserTypeConfig
	err = json.Unmarshal([]byte(userTypeJSON), &userType)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user type: %w", err)
	}

	logger.Debug("User type retrieved from cache", zap.String("slug", slug))
	return &userType, nil
}

func DeleteCachedUserType(ctx context.Context, slug string) error {
	key := fmt.Sprintf("userType:%s", slug)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete user type from cache: %w", err)
	}
	logger.Debug("User type deleted from cache", zap.String("slug", slug))
	return nil
}

func CacheProfile(ctx context.Context, profile *model.Profile) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	key := fmt.Sprintf("profile:%s", profile.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, profileJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache profile: %w", err)
	}

	logger.Debug("Profile cached successfully", zap.String("profileID", profile.ID))
	return nil
}

func GetCachedProfile(ctx context.Context, profileID string) (*model.Profile, error) {
	key := fmt.Sprintf("profile:%s", profileID)
	profileJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Profile not found in cache", zap.String("profileID", profileID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get profile from cache: %w", err)
	}

	var profile model.Profile
	err = json.Unmarshal([]byte(profileJSON), &profile)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	logger.Debug("Profile retrieved from cache", zap.String("profileID", profileID))
	return &profile, nil
}

func DeleteCachedProfile(ctx context.Context, profileID string) error {
	key := fmt.Sprintf("profile:%s", profileID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete profile from cache: %w", err)
	}
	logger.Debug("Profile deleted from cache", zap.String("profileID", profileID))
	return nil
}

func CacheStaticLists(ctx context.Context, lists *model.StaticLists) error {
	listsJSON, err := json.Marshal(lists)
	if err != nil {
		return fmt.Errorf("failed to marshal static lists: %w", err)
	}

	// Static lists are read-only between explicit refreshes, so no TTL.
	err = RedisClient.Set(ctx, "staticLists", listsJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to cache static lists: %w", err)
	}

	logger.Debug("Static lists cached successfully")
	return nil
}

func GetCachedStaticLists(ctx context.Context) (*model.StaticLists, error) {
	listsJSON, err := RedisClient.Get(ctx, "staticLists").Result()
	if err == redis.Nil {
		logger.Debug("Static lists not found in cache")
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get static lists from cache: %w", err)
	}

	var lists model.StaticLists
	err = json.Unmarshal([]byte(listsJSON), &lists)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal static lists: %w", err)
	}

	logger.Debug("Static lists retrieved from cache")
	return &lists, nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
