// Package cache implementa el cache de vistas de listado sobre Redis.
// Las claves llevan el prefijo de la ruta cacheada (page:/dashboard/invoices)
// y la invalidación borra todas las claves bajo ese prefijo, de modo que la
// siguiente lectura del listado recalcula desde el store.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Facturas-api/internal/application/billing"
	"github.com/jhoicas/Facturas-api/pkg/config"
	"github.com/jhoicas/Facturas-api/pkg/logger"
)

const scanBatchSize = 100

var _ billing.ListingCache = (*RedisListingCache)(nil)

// RedisListingCache implementación del puerto billing.ListingCache.
type RedisListingCache struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisListingCache conecta al Redis configurado y verifica con un ping.
func NewRedisListingCache(cfg config.RedisConfig, log *logger.Logger) (*RedisListingCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}

	return &RedisListingCache{client: client, log: log}, nil
}

// Get devuelve el payload cacheado o (nil, nil) en miss.
func (c *RedisListingCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	return data, nil
}

// Set guarda el payload con la vigencia indicada.
func (c *RedisListingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// InvalidatePrefix borra todas las claves bajo el prefijo, en lotes vía SCAN
// para no bloquear Redis con un KEYS.
func (c *RedisListingCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	var removed int
	for {
		keys, next, err := c.client.Scan(ctx, cursor, prefix+"*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("cache scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache del: %w", err)
			}
			removed += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	c.log.Debug().Str("prefix", prefix).Int("keys", removed).Msg("listado invalidado")
	return nil
}

// Close cierra la conexión a Redis.
func (c *RedisListingCache) Close() error {
	return c.client.Close()
}
