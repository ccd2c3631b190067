// Package cache stores built trees so repeated runs skip the build.
//
// # Overview
//
// Exhaustive trees grow roughly geometrically with height, so a build that
// takes seconds is worth keeping. Cached values are opaque bytes; the
// pipeline stores snapshot text (see package io) under a key derived from the
// build options.
//
// # Backends
//
//   - [FileCache]: JSON entries under a directory, sharded by key hash, with
//     optional expiry
//   - [NullCache]: never stores anything, used when caching is disabled
//
// # Keys
//
// A [Keyer] turns build parameters into keys. [DefaultKeyer] hashes the
// parameters together with a format version, so a change to the snapshot
// format invalidates old entries. [ScopedKeyer] prefixes another keyer for
// separate namespaces.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// Expired and unreadable entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl ≤ 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// NullCache misses on every lookup and drops every write. Builds run with
// --no-cache or [cache] disabled = true go through it.
type NullCache struct{}

// NewNullCache returns a [NullCache].
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
