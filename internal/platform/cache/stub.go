package cache

import (
	"context"
	"errors"
	"time"
)

type StubCache struct {
	GetFunc  func(ctx context.Context, key string) (string, error)
	SetFunc  func(ctx context.Context, key, value string, ttl time.Duration) error
	IncrFunc func(ctx context.Context, key string, window time.Duration) (int64, error)
	PingFunc func(ctx context.Context) error
}

var _ Cache = (*StubCache)(nil)

func (c *StubCache) Get(ctx context.Context, key string) (string, error) {
	if c.GetFunc == nil {
		return "", errors.New("Get() not implemented by stub")
	}
	return c.GetFunc(ctx, key)
}

func (c *StubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if c.SetFunc == nil {
		return errors.New("Set() not implemented by stub")
	}
	return c.SetFunc(ctx, key, value, ttl)
}

func (c *StubCache) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	if c.IncrFunc == nil {
		return 0, errors.New("Incr() not implemented by stub")
	}
	return c.IncrFunc(ctx, key, window)
}

func (c *StubCache) Ping(ctx context.Context) error {
	if c.PingFunc == nil {
		return errors.New("Ping() not implemented by stub")
	}
	return c.PingFunc(ctx)
}
