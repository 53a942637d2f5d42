package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
)

// RedisNotifier is the change-notification channel for the kitchen display.
// Order mutations are published here and bridged to SSE clients, which
// re-fetch the active list on every message.
type RedisNotifier struct {
	Client  *redis.Client
	Channel string
}

func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{Client: client, Channel: channel}
}

func (n *RedisNotifier) PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error {
	payload, _ := json.Marshal(evt)
	return n.Client.Publish(ctx, n.Channel, payload).Err()
}

// SubscribeOrderEvents returns a channel of decoded order events and a stop
// function. Malformed payloads are dropped.
func (n *RedisNotifier) SubscribeOrderEvents(ctx context.Context) (<-chan domain.OrderEvent, func()) {
	sub := n.Client.Subscribe(ctx, n.Channel)
	events := make(chan domain.OrderEvent)

	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			var evt domain.OrderEvent
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				continue
			}
			select {
			case events <- evt:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, func() { sub.Close() }
}

// Leaderboard keeps per-restaurant sales aggregates in Redis: a sorted set of
// item quantities and a counters hash, both fed by the Kafka consumer.
type Leaderboard struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewLeaderboard(client *redis.Client, ttl time.Duration) *Leaderboard {
	return &Leaderboard{Client: client, TTL: ttl}
}

func (l *Leaderboard) itemsKey(userID string) string {
	return "toporders:items:" + userID
}

func (l *Leaderboard) statsKey(userID string) string {
	return "toporders:stats:" + userID
}

func (l *Leaderboard) RecordOrder(ctx context.Context, evt domain.OrderEvent) error {
	itemsKey := l.itemsKey(evt.UserID)
	for _, item := range evt.Items {
		if err := l.Client.ZIncrBy(ctx, itemsKey, float64(item.Quantity), item.Name).Err(); err != nil {
			return err
		}
	}
	l.Client.Expire(ctx, itemsKey, l.TTL)

	statsKey := l.statsKey(evt.UserID)
	l.Client.HIncrBy(ctx, statsKey, "order_count", 1)
	l.Client.HIncrByFloat(ctx, statsKey, "revenue", evt.TotalPrice)
	l.Client.Expire(ctx, statsKey, l.TTL)

	return nil
}

func (l *Leaderboard) TopItems(ctx context.Context, userID string, limit int) ([]domain.TopItem, error) {
	results, err := l.Client.ZRevRangeWithScores(ctx, l.itemsKey(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.TopItem, 0, len(results))
	for _, result := range results {
		name, ok := result.Member.(string)
		if !ok {
			continue
		}
		items = append(items, domain.TopItem{
			Name:     name,
			Quantity: int(result.Score),
		})
	}
	return items, nil
}

func (l *Leaderboard) Stats(ctx context.Context, userID string) (orders int, revenue float64, err error) {
	stats, err := l.Client.HGetAll(ctx, l.statsKey(userID)).Result()
	if err != nil || len(stats) == 0 {
		return 0, 0, err
	}
	orders, _ = strconv.Atoi(stats["order_count"])
	revenue, _ = strconv.ParseFloat(stats["revenue"], 64)
	return orders, revenue, nil
}
