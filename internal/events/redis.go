package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Каналы Pub/Sub для downstream-потребителей (broadcast, архивация).
const (
	ChannelBids  = "auction.bids"
	ChannelEnded = "auction.ended"
)

// RedisPublisher публикует события в Redis Pub/Sub.
type RedisPublisher struct {
	rdb *redis.Client
}

// NewRedisPublisher подключается к Redis и проверяет соединение.
func NewRedisPublisher(ctx context.Context, addr string) (*RedisPublisher, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisPublisher{rdb: rdb}, nil
}

func (p *RedisPublisher) publish(ctx context.Context, channel string, ev any) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.rdb.Publish(ctx, channel, b).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	return nil
}

func (p *RedisPublisher) PublishBidAccepted(ctx context.Context, ev BidAccepted) error {
	return p.publish(ctx, ChannelBids, ev)
}

func (p *RedisPublisher) PublishAuctionEnded(ctx context.Context, ev AuctionEnded) error {
	return p.publish(ctx, ChannelEnded, ev)
}

// Close закрывает подключение к Redis.
func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}
