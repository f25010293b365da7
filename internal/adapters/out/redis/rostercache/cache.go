// Package rostercache keeps the courier roster in Redis so that opening an
// assignment does not list every user of the platform each time.
package rostercache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultKey is the Redis key holding the roster.
	DefaultKey = "shipdesk:roster:couriers"
	// DefaultTTL bounds how stale a cached roster may get.
	DefaultTTL = 5 * time.Minute
)

type courierDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Cache implements ports.RosterCache on a single Redis key.
type Cache struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

var _ ports.RosterCache = (*Cache)(nil)

// New creates a cache. An empty key or non-positive ttl selects the defaults.
func New(client redis.Cmdable, key string, ttl time.Duration) *Cache {
	if key == "" {
		key = DefaultKey
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, key: key, ttl: ttl}
}

// Get reads the roster. A missing key is a miss, not an error.
func (c *Cache) Get(ctx context.Context) ([]principal.User, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var dtos []courierDTO
	if err = json.Unmarshal(raw, &dtos); err != nil {
		return nil, false, err
	}

	couriers := make([]principal.User, 0, len(dtos))
	for _, d := range dtos {
		couriers = append(couriers, principal.User{ID: d.ID, Name: d.Name, Email: d.Email, Role: principal.Role(d.Role)})
	}
	return couriers, true, nil
}

// Put replaces the roster and restarts its TTL.
func (c *Cache) Put(ctx context.Context, couriers []principal.User) error {
	dtos := make([]courierDTO, 0, len(couriers))
	for _, u := range couriers {
		dtos = append(dtos, courierDTO{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role.String()})
	}

	raw, err := json.Marshal(dtos)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, raw, c.ttl).Err()
}
