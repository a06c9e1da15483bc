package infrastructure

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"auth-service/internal/domain/entities"
)

const profileCacheTTL = 24 * time.Hour

// ProfileCache keeps recently fetched profiles in redis so the profile
// endpoint does not hit the credential store on every request. The cache is
// optional: NewProfileCache returns nil when redis is not configured or not
// reachable, and callers treat a nil cache as a permanent miss.
type ProfileCache struct {
	client *redis.Client
}

func NewProfileCache(redisURL string) *ProfileCache {
	if redisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, profile cache disabled: %v", err)
		return nil
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unreachable, profile cache disabled: %v", err)
		return nil
	}

	return &ProfileCache{client: client}
}

// Get returns the cached user, or (nil, nil) on a miss. The password hash is
// never serialized, so cached entries carry an empty hash.
func (p *ProfileCache) Get(ctx context.Context, id string) (*entities.User, error) {
	val, err := p.client.Get(ctx, "profile:"+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user entities.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (p *ProfileCache) Set(ctx context.Context, id string, user *entities.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return p.client.Set(ctx, "profile:"+id, data, profileCacheTTL).Err()
}
