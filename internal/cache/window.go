// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// windowKeyPrefix is the Valkey key prefix for request counters.
const windowKeyPrefix = "ratelimit:"

// WindowCounter counts hits per key in fixed time windows stored in Valkey,
// so every instance of the service shares the same budget.
type WindowCounter struct {
	client *redis.Client
	name   string
	window time.Duration
}

// NewWindowCounter creates a counter whose keys live under name and reset
// every window.
func NewWindowCounter(client *redis.Client, name string, window time.Duration) *WindowCounter {
	return &WindowCounter{client: client, name: name, window: window}
}

// Hit records one request for key and returns the number of requests seen in
// the current window, including this one.
func (c *WindowCounter) Hit(ctx context.Context, key string) (int64, error) {
	k := c.key(key, time.Now())

	var incr *redis.IntCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, c.window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("window counter hit: %w", err)
	}
	return incr.Val(), nil
}

// Window returns the window length.
func (c *WindowCounter) Window() time.Duration {
	return c.window
}

// key buckets now into the window it falls in.
func (c *WindowCounter) key(key string, now time.Time) string {
	bucket := now.UnixNano() / int64(c.window)
	return fmt.Sprintf("%s%s:%s:%d", windowKeyPrefix, c.name, key, bucket)
}
