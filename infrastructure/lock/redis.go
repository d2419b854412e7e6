package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	defaultKeyPrefix = "marketplace-sync:lock:"
	defaultTTL       = 15 * time.Minute
)

// Só remove a chave se ela ainda pertence a quem adquiriu
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker compartilha o lock entre instâncias; o TTL libera contas de processos que morreram
type RedisLocker struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewRedisLocker(ctx context.Context, url string, ttl time.Duration) (*RedisLocker, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar no redis: %w", err)
	}

	return NewRedisLockerWithClient(client, ttl), nil
}

func NewRedisLockerWithClient(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisLocker{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		ttl:       ttl,
	}
}

func (r *RedisLocker) TryLock(ctx context.Context, accountID string) (func(), bool, error) {
	key := r.keyPrefix + accountID
	owner := uuid.NewString()

	acquired, err := r.client.SetNX(ctx, key, owner, r.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao adquirir lock da conta %s: %w", accountID, err)
	}
	if !acquired {
		return nil, false, nil
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := releaseScript.Run(releaseCtx, r.client, []string{key}, owner).Err(); err != nil {
				logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao liberar lock da conta")
			}
		})
	}

	return release, true, nil
}

func (r *RedisLocker) Close() error {
	return r.client.Close()
}
