// Package redispusher publishes notification payloads over Redis pub/sub.
// Each user has a dedicated channel; frontend gateways subscribe to the
// channels of their connected users and forward messages over websockets.
package redispusher

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/ports"
)

const channelPrefix = "notifications:user:"

// Connect initializes a Redis client from URL or host:port input.
// Supporting both formats keeps local/dev and container config paths simple.
func Connect(redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") {
		opt, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			return nil, fmt.Errorf("parse redis url: %w", parseErr)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// ChannelForUser returns the pub/sub channel name for a user.
func ChannelForUser(userID kernel.UUID) string {
	return channelPrefix + userID.String()
}

// RedisPusher implements ports.RealtimePusher on Redis pub/sub.
type RedisPusher struct {
	client *redis.Client
}

func NewRedisPusher(client *redis.Client) *RedisPusher {
	return &RedisPusher{client: client}
}

func (p *RedisPusher) SendToUser(ctx context.Context, userID kernel.UUID, payload ports.NotificationPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	return p.client.Publish(ctx, ChannelForUser(userID), raw).Err()
}

// NoopPusher discards every payload. Used when no Redis instance is
// configured; notifications stay readable through the polling queries.
type NoopPusher struct{}

func NewNoopPusher() *NoopPusher {
	return &NoopPusher{}
}

func (p *NoopPusher) SendToUser(context.Context, kernel.UUID, ports.NotificationPayload) error {
	return nil
}
