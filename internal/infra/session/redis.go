package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shalean-booking-api/internal/domain/booking"
	"shalean-booking-api/internal/pkg/config"
	"shalean-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "booking:session:"

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() { _ = client.Close() }
	return client, cleanup, nil
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, cfg config.BookingConfig) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    cfg.SessionTTL,
	}
}

func sessionKey(customerID uuid.UUID) string {
	return keyPrefix + customerID.String()
}

func (s *RedisStore) Get(ctx context.Context, customerID uuid.UUID) (*booking.Selection, error) {
	data, err := s.client.Get(ctx, sessionKey(customerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, errs.Wrap(err, "failed to read wizard session")
	}

	var sel booking.Selection
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil, errs.Wrap(err, "failed to decode wizard session")
	}
	return &sel, nil
}

func (s *RedisStore) Save(ctx context.Context, customerID uuid.UUID, sel *booking.Selection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return errs.Wrap(err, "failed to encode wizard session")
	}
	if err := s.client.Set(ctx, sessionKey(customerID), data, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write wizard session")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, customerID uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKey(customerID)).Err(); err != nil {
		return errs.Wrap(err, "failed to delete wizard session")
	}
	return nil
}
