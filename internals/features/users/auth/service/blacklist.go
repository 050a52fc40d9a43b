package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authRepo "schooladmin_backend/internals/features/users/auth/repository"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

// Blacklist remembers revoked access tokens until they would have expired anyway.
// Tokens are stored as HMAC digests, never raw.
type Blacklist interface {
	Add(ctx context.Context, rawToken string, ttl time.Duration) error
	Contains(ctx context.Context, rawToken string) (bool, error)
}

/* ==========================
   Database
========================== */

type DBBlacklist struct {
	DB     *gorm.DB
	Secret string
	Now    func() time.Time
}

func NewDBBlacklist(db *gorm.DB, secret string) *DBBlacklist {
	return &DBBlacklist{DB: db, Secret: secret, Now: nowUTC}
}

func (b *DBBlacklist) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return nowUTC()
}

func (b *DBBlacklist) Add(ctx context.Context, raw string, ttl time.Duration) error {
	return authRepo.BlacklistToken(ctx, b.DB, helperAuth.TokenHash(raw, b.Secret), b.now().Add(ttl))
}

func (b *DBBlacklist) Contains(ctx context.Context, raw string) (bool, error) {
	return authRepo.IsTokenBlacklisted(ctx, b.DB, helperAuth.TokenHash(raw, b.Secret), b.now())
}

/* ==========================
   Redis (entries expire on their own)
========================== */

const redisBlacklistPrefix = "auth:blacklist:"

type RedisBlacklist struct {
	Client *redis.Client
	Secret string
}

func NewRedisBlacklist(client *redis.Client, secret string) *RedisBlacklist {
	return &RedisBlacklist{Client: client, Secret: secret}
}

func (b *RedisBlacklist) key(raw string) string {
	return redisBlacklistPrefix + helperAuth.TokenHash(raw, b.Secret)
}

func (b *RedisBlacklist) Add(ctx context.Context, raw string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return b.Client.Set(ctx, b.key(raw), "1", ttl).Err()
}

func (b *RedisBlacklist) Contains(ctx context.Context, raw string) (bool, error) {
	n, err := b.Client.Exists(ctx, b.key(raw)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// OpenRedis parses REDIS_URL and pings the server.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
