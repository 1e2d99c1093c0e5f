package cart

import (
	"context"
	"errors"
	"time"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/redis"
)

// ErrNoSnapshot marks an absent persisted cart.
var ErrNoSnapshot = errors.New("cart: no persisted snapshot")

// Storage mirrors one cart's serialized snapshot in durable storage.
type Storage interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
	Clear(ctx context.Context) error
}

// StorageFactory hands out the storage mirror bound to one cart id.
type StorageFactory interface {
	StorageFor(cartID string) Storage
}

type redisStorage struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// RedisStorageFactory builds per-cart redis mirrors.
type RedisStorageFactory struct {
	Client *redis.Client
	TTL    time.Duration
}

// StorageFor returns the mirror for the given cart id.
func (f RedisStorageFactory) StorageFor(cartID string) Storage {
	return &redisStorage{client: f.Client, key: f.Client.CartKey(cartID), ttl: f.TTL}
}

func (s *redisStorage) Load(ctx context.Context) ([]byte, error) {
	val, err := s.client.Get(ctx, s.key)
	if err != nil {
		if redis.IsNil(err) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return []byte(val), nil
}

func (s *redisStorage) Save(ctx context.Context, payload []byte) error {
	return s.client.Set(ctx, s.key, string(payload), s.ttl)
}

func (s *redisStorage) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key)
}
