package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"team-match/internal/config"

	"github.com/redis/go-redis/v9"
)

// Redis caches embedding vectors keyed by a hash of the profile text.
// When the server is unreachable the cache silently degrades to a no-op
// so matching keeps working without it.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, ttl time.Duration, logger *log.Logger) *Redis {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("Cache | redis_unavailable addr=%s error=%v", addr, err)
		}
		_ = client.Close()
		return &Redis{client: nil, ttl: ttl, logger: logger}
	}

	return &Redis{client: client, ttl: ttl, logger: logger}
}

func (r *Redis) GetVector(ctx context.Context, text string) ([]float32, bool, error) {
	if r.isUnavailable() {
		return nil, false, nil
	}

	raw, err := r.client.Get(ctx, vectorKey(text)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		r.warnUnavailableOnce(err)
		return nil, false, err
	}

	var vec []float32
	if err := json.Unmarshal(raw, &vec); err != nil {
		return nil, false, err
	}
	if len(vec) == 0 {
		return nil, false, nil
	}
	return vec, true, nil
}

func (r *Redis) SetVector(ctx context.Context, text string, vec []float32) error {
	if r.isUnavailable() || len(vec) == 0 {
		return nil
	}

	raw, err := json.Marshal(vec)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, vectorKey(text), raw, r.ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("Cache | redis_error_bypassing error=%v", err)
	}
}

func vectorKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "embedding:" + hex.EncodeToString(sum[:])
}
