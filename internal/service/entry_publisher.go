package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"chatroom/internal/domain"
)

const defaultEntryChannel = "chat:entries"

// EntryPublisher difunde las entradas ya registradas a consumidores externos.
// No es persistencia: si nadie escucha, la entrada se pierde para ellos.
type EntryPublisher interface {
	Publish(ctx context.Context, entry domain.ChatLogEntry) error
}

type nopEntryPublisher struct{}

func NewNopEntryPublisher() EntryPublisher {
	return nopEntryPublisher{}
}

func (nopEntryPublisher) Publish(context.Context, domain.ChatLogEntry) error {
	return nil
}

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type redisEntryPublisher struct {
	client  redisPublisher
	channel string
	timeout time.Duration
}

// NewRedisEntryPublisher publica cada entrada como JSON en un canal pub/sub.
func NewRedisEntryPublisher(client *redis.Client, channel string) EntryPublisher {
	if client == nil {
		return NewNopEntryPublisher()
	}
	channel = strings.TrimSpace(channel)
	if channel == "" {
		channel = defaultEntryChannel
	}
	return &redisEntryPublisher{
		client:  client,
		channel: channel,
		timeout: 500 * time.Millisecond,
	}
}

func (p *redisEntryPublisher) Publish(ctx context.Context, entry domain.ChatLogEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.client.Publish(ctx, p.channel, payload).Err()
}
