package store

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/echotab/echotab/pkg/dashboard"
	"github.com/echotab/echotab/pkg/errors"
)

// RedisOptions configures a [RedisStore].
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to the profile name to form the key.
	Prefix string
}

// RedisStore keeps each profile as a JSON string under <prefix><profile>.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and checks the connection.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, storageError(err, "connect to redis at %s", opts.Addr)
	}
	return NewRedisStoreFromClient(client, opts.Prefix), nil
}

// NewRedisStoreFromClient wraps an existing client. The store owns it and
// closes it on Close.
func NewRedisStoreFromClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(profile string) (string, error) {
	if err := errors.ValidateProfileName(profile); err != nil {
		return "", err
	}
	return s.prefix + profile, nil
}

func (s *RedisStore) Load(ctx context.Context, profile string) (*dashboard.State, error) {
	key, err := s.key(profile)
	if err != nil {
		return nil, err
	}
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, storageError(err, "redis get %s", key)
	}
	st, err := decode(data)
	if err != nil {
		return nil, storageError(err, "profile %s", profile)
	}
	return st, nil
}

func (s *RedisStore) Save(ctx context.Context, profile string, st *dashboard.State) error {
	key, err := s.key(profile)
	if err != nil {
		return err
	}
	data, err := encode(st)
	if err != nil {
		return storageError(err, "profile %s", profile)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return storageError(err, "redis set %s", key)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, profile string) error {
	key, err := s.key(profile)
	if err != nil {
		return err
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return storageError(err, "redis del %s", key)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
