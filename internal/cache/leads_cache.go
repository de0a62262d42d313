package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blackos-labs/agency-backoffice/internal/leads"
	"github.com/blackos-labs/agency-backoffice/pkg/logging"
)

const leadsListKey = "leads:all"

// LeadsCache keeps a serialized copy of the full leads list in Redis so the
// admin table does not hit Postgres on every poll. Mutations invalidate the
// key; a miss simply falls through to the repository.
type LeadsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

func NewLeadsCache(client *redis.Client, ttl time.Duration, logger *logging.Logger) *LeadsCache {
	if logger == nil {
		logger = logging.Default()
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &LeadsCache{client: client, ttl: ttl, logger: logger}
}

func (c *LeadsCache) Get(ctx context.Context) ([]*leads.Lead, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, leadsListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("leads cache read failed", "error", err)
		}
		return nil, false
	}
	var list []*leads.Lead
	if err := json.Unmarshal(payload, &list); err != nil {
		c.logger.Warn("leads cache payload corrupt, dropping", "error", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return list, true
}

func (c *LeadsCache) Set(ctx context.Context, list []*leads.Lead) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(list)
	if err != nil {
		c.logger.Warn("leads cache encode failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, leadsListKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("leads cache write failed", "error", err)
	}
}

func (c *LeadsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, leadsListKey).Err(); err != nil {
		c.logger.Warn("leads cache invalidate failed", "error", err)
	}
}
