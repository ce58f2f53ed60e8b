package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"filmorate/config"
	"filmorate/models"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

const (
	popularCacheTTL    = time.Minute
	popularCacheKeySet = "popular:keys"
)

func InitRedis() error {
	if config.AppConfig == nil {
		return fmt.Errorf("AppConfig is not loaded")
	}

	redisConfig := config.AppConfig.Redis
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisConfig.Host, redisConfig.Port),
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})

	// Тест соединения
	_, err := RedisClient.Ping(context.Background()).Result()
	if err != nil {
		RedisClient = nil
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

func popularCacheKey(count int, genreID int64, year int) string {
	return fmt.Sprintf("popular:%d:%d:%d", count, genreID, year)
}

// cachedPopular читает список из кеша. Любая ошибка Redis трактуется
// как промах: источник истины всегда база.
func cachedPopular(ctx context.Context, key string) ([]models.Film, bool) {
	if RedisClient == nil {
		return nil, false
	}
	raw, err := RedisClient.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var films []models.Film
	if err := json.Unmarshal([]byte(raw), &films); err != nil {
		return nil, false
	}
	return films, true
}

func storePopular(ctx context.Context, key string, films []models.Film) {
	if RedisClient == nil {
		return
	}
	raw, err := json.Marshal(films)
	if err != nil {
		return
	}
	if err := RedisClient.Set(ctx, key, raw, popularCacheTTL).Err(); err != nil {
		log.Println("popular cache set failed:", err)
		return
	}
	// Регистр ключей нужен для точечной инвалидации.
	_ = RedisClient.SAdd(ctx, popularCacheKeySet, key).Err()
}

// invalidatePopular сбрасывает все закешированные выборки популярных
// фильмов. Вызывается после лайков и мутаций фильмов.
func invalidatePopular(ctx context.Context) {
	if RedisClient == nil {
		return
	}
	keys, err := RedisClient.SMembers(ctx, popularCacheKeySet).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	keys = append(keys, popularCacheKeySet)
	if err := RedisClient.Del(ctx, keys...).Err(); err != nil {
		log.Println("popular cache invalidation failed:", err)
	}
}
