package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"serenity-backend/models"
)

// AvailableRoomsKey is the Redis key holding the cached availability
// listing.
const AvailableRoomsKey = "rooms:available"

// AvailabilityCache keeps the available-rooms listing in Redis so repeated
// lookups skip the inventory scan. Every mutating operation invalidates
// it. A nil cache or nil client disables caching entirely; the core never
// depends on it for correctness.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &AvailabilityCache{client: client, ttl: ttl}
}

// Get returns the cached listing, or false on miss, decode failure or a
// disabled cache.
func (c *AvailabilityCache) Get(ctx context.Context) ([]models.Room, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, AvailableRoomsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var rooms []models.Room
	if err := json.Unmarshal(raw, &rooms); err != nil {
		return nil, false
	}
	return rooms, true
}

// Set stores the listing best-effort.
func (c *AvailabilityCache) Set(ctx context.Context, rooms []models.Room) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(rooms)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, AvailableRoomsKey, raw, c.ttl).Err(); err != nil {
		log.Printf("warning: failed to cache available rooms: %v", err)
	}
}

// Invalidate drops the cached listing.
func (c *AvailabilityCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, AvailableRoomsKey).Err(); err != nil {
		log.Printf("warning: failed to invalidate room cache: %v", err)
	}
}
