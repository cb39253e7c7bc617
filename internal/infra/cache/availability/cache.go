package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SlotAvailability доступность одного временного слота на дату
type SlotAvailability struct {
	StartTime      string `json:"start_time"`
	BookedCount    int    `json:"booked_count"`
	RemainingSpots int    `json:"remaining_spots"`
	Available      bool   `json:"available"`
}

// DaySnapshot снимок доступности активности на одну дату
type DaySnapshot struct {
	ActivityID int64              `json:"activity_id"`
	Date       string             `json:"date"`
	Slots      []SlotAvailability `json:"slots"`
	ComputedAt time.Time          `json:"computed_at"`
}

// Cache кэш снимков доступности поверх Redis
// Снимки короткоживущие: инвалидация при каждом изменении бронирований,
// TTL страхует от пропущенной инвалидации
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш доступности с заданным TTL
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func snapshotKey(activityID int64, date string) string {
	return fmt.Sprintf("availability:%d:%s", activityID, date)
}

// Get получает снимок доступности из кэша
func (c *Cache) Get(ctx context.Context, activityID int64, date string) (*DaySnapshot, error) {
	raw, err := c.client.Get(ctx, snapshotKey(activityID, date)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - redis get: %v", ErrCacheUnavailable, err)
	}

	var snapshot DaySnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		// Битую запись убираем, чтобы не отдавать ее повторно
		c.client.Del(ctx, snapshotKey(activityID, date))
		return nil, ErrCacheMiss
	}

	return &snapshot, nil
}

// Set сохраняет снимок доступности с TTL кэша
func (c *Cache) Set(ctx context.Context, snapshot *DaySnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal snapshot: %v", ErrCacheUnavailable, err)
	}

	err = c.client.Set(ctx, snapshotKey(snapshot.ActivityID, snapshot.Date), raw, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("%w: Set - redis set: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Invalidate удаляет снимок доступности активности на дату
func (c *Cache) Invalidate(ctx context.Context, activityID int64, date string) error {
	err := c.client.Del(ctx, snapshotKey(activityID, date)).Err()
	if err != nil {
		return fmt.Errorf("%w: Invalidate - redis del: %v", ErrCacheUnavailable, err)
	}
	return nil
}
