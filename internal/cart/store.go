package cart

import (
	"context"
	"encoding/json"

	pkgerrors "github.com/freemanindumentaria/storefront-backend/pkg/errors"
	"github.com/freemanindumentaria/storefront-backend/pkg/logger"
	"github.com/freemanindumentaria/storefront-backend/pkg/redis"
)

// Store defines the persistence surface required by the cart service. The
// whole cart is serialized under one key per session and overwritten on every
// mutation.
type Store interface {
	Load(ctx context.Context, sessionID string) Cart
	Save(ctx context.Context, sessionID string, cart Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type redisStore struct {
	client *redis.Client
	logg   *logger.Logger
}

// NewRedisStore builds the Redis-backed cart store.
func NewRedisStore(client *redis.Client, logg *logger.Logger) Store {
	return &redisStore{client: client, logg: logg}
}

// Load is fail-soft: a missing key, an undecodable payload, or a transport
// failure all yield an empty cart. The session simply starts over.
func (s *redisStore) Load(ctx context.Context, sessionID string) Cart {
	raw, err := s.client.Get(ctx, s.client.CartKey(sessionID))
	if err != nil {
		if !redis.IsNil(err) && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart.load_failed")
		}
		return Cart{}
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart.payload_corrupt")
		}
		return Cart{}
	}
	return cart
}

func (s *redisStore) Save(ctx context.Context, sessionID string, cart Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serialize cart")
	}
	if err := s.client.Set(ctx, s.client.CartKey(sessionID), payload, 0); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.client.CartKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart")
	}
	return nil
}
