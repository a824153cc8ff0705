package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
)

const dayTTL = 30 * time.Second

// DayCache caches the raw agenda rows of a single calendar day, without the
// client join; the service re-joins on every read so client fields stay
// current. Key format: agenda:<date>
//
// The cache fails open: any Redis or codec error is logged and treated as a
// miss, so the agenda always falls back to the store.
type DayCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewDayCache creates a DayCache wrapping the given Redis client.
func NewDayCache(client *redis.Client, log zerolog.Logger) *DayCache {
	return &DayCache{client: client, log: log}
}

// GetDay returns the cached agenda for date, if present.
func (c *DayCache) GetDay(ctx context.Context, date string) ([]*domain.Appointment, bool) {
	raw, err := c.client.Get(ctx, c.key(date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("date", date).Msg("day cache read failed")
		}
		return nil, false
	}

	var appointments []*domain.Appointment
	if err := json.Unmarshal(raw, &appointments); err != nil {
		c.log.Warn().Err(err).Str("date", date).Msg("day cache entry corrupt, dropping")
		c.InvalidateDay(ctx, date)
		return nil, false
	}
	return appointments, true
}

// SetDay stores the agenda for date (expires after dayTTL).
func (c *DayCache) SetDay(ctx context.Context, date string, appointments []*domain.Appointment) {
	raw, err := json.Marshal(appointments)
	if err != nil {
		c.log.Warn().Err(err).Str("date", date).Msg("day cache encode failed")
		return
	}
	if err := c.client.Set(ctx, c.key(date), raw, dayTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("date", date).Msg("day cache write failed")
	}
}

// InvalidateDay drops the cached agenda for date.
func (c *DayCache) InvalidateDay(ctx context.Context, date string) {
	if err := c.client.Del(ctx, c.key(date)).Err(); err != nil {
		c.log.Warn().Err(err).Str("date", date).Msg("day cache invalidation failed")
	}
}

func (c *DayCache) key(date string) string {
	return "agenda:" + date
}
