package ledger

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	redis "github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the list holding the ledger
const DefaultRedisKey = "minotaur:scores"

// RedisConfig contains configuration for the Redis store
type RedisConfig struct {
	Client redis.UniversalClient
	Key    string // empty uses DefaultRedisKey
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.Wrap(ErrInvalidConfig, "config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.Wrap(ErrInvalidConfig, "client cannot be nil")
	}
	return nil
}

// RedisStore keeps records as JSON entries of one Redis list
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedis creates a Redis-backed store
func NewRedis(cfg *RedisConfig) (*RedisStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: cfg.Client, key: key}, nil
}

// DialRedis connects to addr (a redis:// URL or host:port) and verifies the connection
func DialRedis(ctx context.Context, addr string) (*RedisStore, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{Addr: addr}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "failed to reach redis at %s", opts.Addr)
	}
	return NewRedis(&RedisConfig{Client: client})
}

func (s *RedisStore) Append(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "failed to marshal score")
	}
	if err := s.client.RPush(ctx, s.key, data).Err(); err != nil {
		return errors.Wrapf(err, "failed to push score %s", rec.ID)
	}
	return nil
}

func (s *RedisStore) All(ctx context.Context) ([]Record, error) {
	entries, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read scores")
	}
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		var r Record
		if err := json.Unmarshal([]byte(e), &r); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal score")
		}
		records = append(records, r)
	}
	return records, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
