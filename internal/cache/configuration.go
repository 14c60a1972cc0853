package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/fieldsales/visits/internal/model"
)

const cachedConfigurationTimeToLive = 10 * time.Minute

// allTypesKey groups the unfiltered configuration listing
const allTypesKey = "__all__"

// ConfigurationCache caches configuration lookups per config type.
// Configurations are read by every authenticated user on each form load
// and change only on admin writes, so cache-aside fits well.
type ConfigurationCache interface {
	FindByType(ctx context.Context, configType string) ([]*model.Configuration, error)
	Cache(ctx context.Context, configType string, configs []*model.Configuration) error
	Evict(ctx context.Context, configType string) error
	EvictAll(ctx context.Context) error
}

type redisConfigurationCache struct {
	client *redis.Client
}

// NewRedisConfigurationCache builds redis ConfigurationCache
func NewRedisConfigurationCache(client *redis.Client) ConfigurationCache {
	return &redisConfigurationCache{client: client}
}

func (r *redisConfigurationCache) FindByType(ctx context.Context, configType string) ([]*model.Configuration, error) {
	res, err := r.client.Get(ctx, r.key(configType)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var configs []*model.Configuration
	if err := msgpack.Unmarshal([]byte(res), &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *redisConfigurationCache) Cache(ctx context.Context, configType string, configs []*model.Configuration) error {
	encoded, err := msgpack.Marshal(configs)
	if err != nil {
		return err
	}

	if _, err := r.client.Set(ctx, r.key(configType), encoded, cachedConfigurationTimeToLive).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisConfigurationCache) Evict(ctx context.Context, configType string) error {
	if _, err := r.client.Del(ctx, r.key(configType), r.key(allTypesKey)).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisConfigurationCache) EvictAll(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, "configurations:*", 0).Iterator()

	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}
	if _, err := r.client.Del(ctx, keys...).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisConfigurationCache) key(configType string) string {
	if configType == "" {
		configType = allTypesKey
	}
	return fmt.Sprintf("configurations:%s", configType)
}
