package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
)

// Cache de leitura para configuração de agenda (expediente, pausas,
// férias), que o front reconsulta a cada interação. TTL curto:
// escrita invalida, mas outra instância pode servir valor antigo por
// até esse intervalo.
const defaultTTL = 5 * time.Minute

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New cria o cache. Addr vazio desliga o cache (todos os métodos
// viram no-op/miss), o que mantém testes e dev sem redis funcionando.
func New(cfg *config.Config) *Cache {
	if cfg.RedisAddr == "" {
		return &Cache{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	return &Cache{rdb: rdb, ttl: defaultTTL}
}

func (c *Cache) enabled() bool {
	return c != nil && c.rdb != nil
}

// GetJSON retorna true em hit, decodificando em dest.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if !c.enabled() {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Get().Warn("cache: invalid payload, dropping key " + key)
		c.rdb.Del(ctx, key)
		return false
	}

	return true
}

// SetJSON grava com TTL. Falha de cache nunca falha a requisição.
func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if !c.enabled() {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Get().Warn("cache: set failed for key " + key)
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if !c.enabled() || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}
