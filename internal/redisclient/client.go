package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Client wraps a Redis client with OpenTelemetry tracing
type Client struct {
	cmdable redis.Cmdable
}

// NewClient creates a new traced Redis client for a single Redis instance
func NewClient(client *redis.Client) *Client {
	return &Client{cmdable: client}
}

// Get wraps Redis Get with tracing
func (c *Client) Get(ctx context.Context, key string) *redis.StringCmd {
	ctx, span := startSpan(ctx, "redis.get", key)
	defer span.End()

	cmd := c.cmdable.Get(ctx, key)
	recordResult(span, cmd.Err())
	return cmd
}

// Set wraps Redis Set with tracing
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	ctx, span := startSpan(ctx, "redis.set", key)
	span.SetAttributes(attribute.String("redis.expiration", expiration.String()))
	defer span.End()

	cmd := c.cmdable.Set(ctx, key, value, expiration)
	recordResult(span, cmd.Err())
	return cmd
}

// Del wraps Redis Del with tracing
func (c *Client) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	ctx, span := startSpan(ctx, "redis.del", "")
	span.SetAttributes(attribute.StringSlice("redis.keys", keys))
	defer span.End()

	cmd := c.cmdable.Del(ctx, keys...)
	recordResult(span, cmd.Err())
	return cmd
}

// TTL wraps Redis TTL with tracing
func (c *Client) TTL(ctx context.Context, key string) *redis.DurationCmd {
	ctx, span := startSpan(ctx, "redis.ttl", key)
	defer span.End()

	cmd := c.cmdable.TTL(ctx, key)
	recordResult(span, cmd.Err())
	return cmd
}

// Ping wraps Redis Ping with tracing
func (c *Client) Ping(ctx context.Context) *redis.StatusCmd {
	ctx, span := startSpan(ctx, "redis.ping", "")
	defer span.End()

	cmd := c.cmdable.Ping(ctx)
	recordResult(span, cmd.Err())
	return cmd
}

func startSpan(ctx context.Context, operation, key string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("redis.operation", operation),
		attribute.String("redis.client", "app-cadastro"),
	}
	if key != "" {
		attrs = append(attrs, attribute.String("redis.key", key))
	}
	return otel.Tracer("redis").Start(ctx, operation, trace.WithAttributes(attrs...))
}

func recordResult(span trace.Span, err error) {
	if err != nil && err != redis.Nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "success")
}
