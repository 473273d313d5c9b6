// Package cache provides the read-through cache used for the course and
// professor catalog. Redis backs it when enabled, otherwise NoopCache.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrCacheMiss is returned when the requested key is not found in cache.
	ErrCacheMiss = errors.New("cache: key not found")

	// ErrCacheConnection is returned when the cache server cannot be reached.
	ErrCacheConnection = errors.New("cache: connection failed")

	// ErrCacheSerialization is returned when serialization/deserialization fails.
	ErrCacheSerialization = errors.New("cache: serialization failed")

	// ErrCacheKeyEmpty is returned when an empty key is provided.
	ErrCacheKeyEmpty = errors.New("cache: key cannot be empty")
)

// Catalog keys
const (
	KeyCourses    = "catalog:courses"
	KeyProfessors = "catalog:professors"
)

// DefaultTTL applies when a cache is built with a non-positive TTL
const DefaultTTL = 5 * time.Minute

// Cache stores JSON-serializable values by key
type Cache interface {
	// Get decodes the value stored at key into dest, or returns ErrCacheMiss.
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// NoopCache never stores anything; every Get misses.
type NoopCache struct{}

// NewNoopCache returns a cache that never stores anything
func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) Get(context.Context, string, interface{}) error { return ErrCacheMiss }

func (NoopCache) Set(context.Context, string, interface{}) error { return nil }

func (NoopCache) Delete(context.Context, ...string) error { return nil }

func (NoopCache) Close() error { return nil }
