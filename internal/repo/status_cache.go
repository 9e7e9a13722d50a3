package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatusCache — короткоживущий кэш произвольных JSON-значений.
// Используется сервисом entitlement, чтобы не пересчитывать статус
// подписки на каждый запрос.
type StatusCache interface {
	// Get читает значение в dest. Промах кэша — не ошибка: (false, nil).
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set сохраняет значение с указанным TTL.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete инвалидирует значение по ключу.
	Delete(ctx context.Context, key string) error
}

// NewRedisClient подключается к Redis по URI и проверяет соединение.
func NewRedisClient(uri string) (*redis.Client, error) {
	opt, err := redis.ParseURL(uri)
	if err != nil {
		return nil, err
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

type redisCache struct {
	rdb *redis.Client
}

// NewRedisCache оборачивает клиент Redis в StatusCache.
func NewRedisCache(rdb *redis.Client) StatusCache {
	return &redisCache{rdb: rdb}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		// промах или недоступность — деградируем до пересчёта
		return false, nil
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

type noopCache struct{}

// NewNoopCache возвращает кэш-заглушку для конфигураций без Redis.
func NewNoopCache() StatusCache { return noopCache{} }

func (noopCache) Get(ctx context.Context, key string, dest any) (bool, error) { return false, nil }
func (noopCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}
func (noopCache) Delete(ctx context.Context, key string) error { return nil }
