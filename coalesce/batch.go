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

import (
	"context"

	"github.com/botobag/asyncrt/concurrent/future"
)

// batch collects the keys coalesced into a single Batcher call. A batch stays open -- accepting
// more keys from Load -- until the executor actually polls its dispatchFuture, at which point the
// Group detaches it so the next Load call starts a fresh one.
type batch struct {
	group   *Group
	keys    []Key
	entries []*entry
}

// enqueue adds key to the batch, deduplicating against the Group's cache exactly as the teacher's
// taskQueue.Enqueue did against its CacheMap.
func (b *batch) enqueue(key Key) *entry {
	e := newEntry(key)
	if existing := b.group.cache.Set(e); existing != e {
		return existing
	}
	b.keys = append(b.keys, key)
	b.entries = append(b.entries, e)
	return e
}

// dispatchFuture is the leaf future spawned onto the Group's Executor to run a batch's Batcher
// call. It resolves on its very first poll: Batcher is assumed non-blocking and cooperative, like
// any other leaf future in this runtime, so the call runs inline on the executor's own goroutine.
type dispatchFuture struct {
	ctx   context.Context
	batch *batch
	done  bool
}

var _ future.Future = (*dispatchFuture)(nil)

// Poll implements future.Future.
func (f *dispatchFuture) Poll(future.Waker) (future.PollResult, error) {
	if f.done {
		return nil, future.ErrPolledAfterTerminal
	}
	f.done = true

	b := f.batch
	if b.group.pending == b {
		b.group.pending = nil
	}

	results, err := b.group.config.Batcher.Load(f.ctx, b.keys)

	for _, e := range b.entries {
		if err != nil {
			if completeErr := e.setErr(err); completeErr != nil {
				return nil, completeErr
			}
			continue
		}

		v, ok := results[e.key]
		var completeErr error
		if ok {
			completeErr = e.complete(v)
		} else {
			completeErr = e.setErr(ErrKeyNotLoaded)
		}
		if completeErr != nil {
			return nil, completeErr
		}
	}

	return nil, nil
}
