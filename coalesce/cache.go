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

package coalesce

// CacheMap caches the entry tracking a key's in-flight or completed load. Unlike the teacher's
// CacheMap, implementations need not be safe for concurrent use: a Group is only ever driven from
// the single goroutine that owns the Executor it was built with.
type CacheMap interface {
	// Get returns the cached entry for key, or nil if none is cached.
	Get(key Key) *entry

	// Set caches e. If an entry for e.key is already cached, the existing entry is returned instead
	// and e is discarded; otherwise e is cached and returned.
	Set(e *entry) *entry

	// Delete removes any cached entry for key.
	Delete(key Key)

	// Clear empties the cache.
	Clear()
}

// DefaultCacheMap is used when Config.CacheMap is left nil. It is a plain map: correct here only
// because a Group is always driven from one cooperative goroutine, unlike the teacher's
// sync.Map-backed DefaultCacheMap which had to survive a multi-worker thread pool.
type DefaultCacheMap struct {
	m map[Key]*entry
}

var _ CacheMap = (*DefaultCacheMap)(nil)

// Get implements CacheMap.
func (c *DefaultCacheMap) Get(key Key) *entry {
	return c.m[key]
}

// Set implements CacheMap.
func (c *DefaultCacheMap) Set(e *entry) *entry {
	if c.m == nil {
		c.m = make(map[Key]*entry)
	}
	if existing, ok := c.m[e.key]; ok {
		return existing
	}
	c.m[e.key] = e
	return e
}

// Delete implements CacheMap.
func (c *DefaultCacheMap) Delete(key Key) {
	delete(c.m, key)
}

// Clear implements CacheMap.
func (c *DefaultCacheMap) Clear() {
	c.m = nil
}

// noCacheMap serves as the type for NoCacheMap.
type noCacheMap int

var _ CacheMap = NoCacheMap

func (noCacheMap) Get(Key) *entry       { return nil }
func (noCacheMap) Set(e *entry) *entry  { return e }
func (noCacheMap) Delete(Key)           {}
func (noCacheMap) Clear()               {}

// NoCacheMap is a placeholder given to Config.CacheMap to disable caching for a Group: every Load
// dispatches a fresh entry even if the same key was requested before.
const NoCacheMap noCacheMap = 0
