/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package coalesce implements a request-coalescing, batching load cache on top of the future and
// concurrent packages: concurrent Load calls for distinct keys made before the executor gets
// around to running the dispatch task are folded into a single Batcher call.
package coalesce

import (
	"context"

	"github.com/botobag/asyncrt/concurrent"
	"github.com/botobag/asyncrt/concurrent/future"
)

// Batcher loads the values for a set of keys in one call. The returned map need not contain every
// key; any key missing from it fails with ErrKeyNotLoaded.
type Batcher interface {
	Load(ctx context.Context, keys []Key) (map[Key]Result, error)
}

// BatcherFunc adapts an ordinary function to Batcher.
type BatcherFunc func(ctx context.Context, keys []Key) (map[Key]Result, error)

// Load implements Batcher.
func (f BatcherFunc) Load(ctx context.Context, keys []Key) (map[Key]Result, error) {
	return f(ctx, keys)
}

// Config configures a Group.
type Config struct {
	// (Required) Batcher loads the values for a batch of coalesced keys.
	Batcher Batcher

	// (Required) Executor that the Group spawns its per-batch dispatch task onto.
	Executor *concurrent.Executor

	// (Optional) CacheMap caches in-flight and completed loads, keyed by Key. Leave nil for the
	// default in-memory cache, or set to NoCacheMap to disable caching (and batch-level
	// deduplication) entirely.
	CacheMap CacheMap
}

// Group coalesces Load calls for distinct keys into batched Batcher calls, caching results so a
// key already seen is never loaded twice.
type Group struct {
	config Config
	cache  CacheMap

	// pending is the currently open batch, or nil if no batch is currently accepting keys. It is
	// cleared by dispatchFuture.Poll, not by Load, so that every key requested between when a batch
	// opens and when the executor actually dispatches it is coalesced together.
	pending *batch
}

// New creates a Group from config.
func New(config Config) (*Group, error) {
	if config.Batcher == nil {
		return nil, errMissingBatcher
	}
	if config.Executor == nil {
		return nil, errMissingExecutor
	}

	cache := config.CacheMap
	if cache == nil {
		cache = &DefaultCacheMap{}
	}

	return &Group{config: config, cache: cache}, nil
}

// Load returns a Future for the value identified by key. If key has already been requested, the
// same in-flight or completed entry is reused instead of contacting the Batcher again.
func (g *Group) Load(ctx context.Context, key Key) (future.Future, error) {
	if key == nil {
		return nil, errMissingKey
	}

	if cached := g.cache.Get(key); cached != nil {
		return cached.future(), nil
	}

	b := g.pending
	if b == nil {
		b = &batch{group: g}
		g.pending = b
		if err := g.config.Executor.Spawn(&dispatchFuture{ctx: ctx, batch: b}); err != nil {
			g.pending = nil
			return nil, err
		}
	}

	return b.enqueue(key).future(), nil
}

// LoadAll returns a Future for the values identified by keys, in the same order, resolving once
// every key's batch (possibly several, if the keys span more than one dispatch) has completed.
func (g *Group) LoadAll(ctx context.Context, keys ...Key) (future.Future, error) {
	futures := make([]future.Future, 0, len(keys))
	for _, key := range keys {
		f, err := g.Load(ctx, key)
		if err != nil {
			return nil, err
		}
		futures = append(futures, f)
	}

	if len(futures) == 0 {
		return future.Ready([]Result{}), nil
	}

	return joinAll(futures), nil
}

// joinAll folds futures into a single Future resolving to a []Result in the same order, built out
// of the binary future.Join the way a left fold builds a list out of cons cells: Join only ever
// pairs two futures, so accumulating more than two means threading the running slice through a
// Then at every step.
func joinAll(futures []future.Future) future.Future {
	acc := future.Then(futures[0], func(v any) future.Future {
		return future.Ready([]Result{v})
	})

	for _, f := range futures[1:] {
		prev, next := acc, f
		acc = future.Then(future.Join(prev, next), func(v any) future.Future {
			pair := v.(future.JoinResult)
			return future.Ready(append(pair.First.([]Result), pair.Second))
		})
	}

	return acc
}

// Clear removes key from the cache, if cached, so the next Load for it performs a fresh load.
func (g *Group) Clear(key Key) {
	g.cache.Delete(key)
}

// ClearAll empties the cache entirely.
func (g *Group) ClearAll() {
	g.cache.Clear()
}

// Prime seeds the cache with a value for key as though it had already been loaded, unless an entry
// for key already exists.
func (g *Group) Prime(key Key, value Result) error {
	e := newEntry(key)
	if existing := g.cache.Set(e); existing != e {
		return nil
	}
	return e.complete(value)
}
