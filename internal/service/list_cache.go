package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	appointmentsCacheKey   = "cache:appointments:detailed"
	availabilitiesCacheKey = "cache:availabilities"

	// List caches are short-lived; inserts invalidate them eagerly and the
	// TTL only bounds staleness if an invalidation is lost.
	listCacheTTL = 5 * time.Minute
)

// ListCache is an optional Redis read cache over the two list views assembled
// by the usecases. A cache failure is never surfaced to the caller; the
// usecase falls through to the database.
type ListCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewListCache(redisClient *redis.Client, log *logrus.Logger) *ListCache {
	return &ListCache{
		redisClient: redisClient,
		log:         log,
	}
}

// GetAppointments loads the cached detailed appointment list into dest.
// Returns false on miss or any cache error.
func (c *ListCache) GetAppointments(ctx context.Context, dest any) bool {
	return c.get(ctx, appointmentsCacheKey, dest)
}

func (c *ListCache) SetAppointments(ctx context.Context, value any) {
	c.set(ctx, appointmentsCacheKey, value)
}

func (c *ListCache) InvalidateAppointments(ctx context.Context) {
	c.invalidate(ctx, appointmentsCacheKey)
}

// GetAvailabilities loads the cached availability list into dest.
// Returns false on miss or any cache error.
func (c *ListCache) GetAvailabilities(ctx context.Context, dest any) bool {
	return c.get(ctx, availabilitiesCacheKey, dest)
}

func (c *ListCache) SetAvailabilities(ctx context.Context, value any) {
	c.set(ctx, availabilitiesCacheKey, value)
}

func (c *ListCache) InvalidateAvailabilities(ctx context.Context) {
	c.invalidate(ctx, availabilitiesCacheKey)
}

func (c *ListCache) get(ctx context.Context, key string, dest any) bool {
	payload, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read cache key %s: %+v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		c.log.Warnf("Failed to decode cache key %s: %+v", key, err)
		return false
	}

	return true
}

func (c *ListCache) set(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Failed to encode cache key %s: %+v", key, err)
		return
	}

	if err := c.redisClient.Set(ctx, key, payload, listCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to write cache key %s: %+v", key, err)
	}
}

func (c *ListCache) invalidate(ctx context.Context, key string) {
	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		c.log.Warnf("Failed to invalidate cache key %s: %+v", key, err)
	}
}
