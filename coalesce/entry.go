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
	"fmt"

	"github.com/botobag/asyncrt/concurrent/future"
)

// Key identifies a value loaded through a Group.
type Key = any

// Result is a value loaded through a Group.
type Result = any

type entryState int

const (
	entryPending entryState = iota
	entryErr
	entryValue
)

// entry tracks one key's in-flight or completed load. Unlike the teacher's Task, which used
// atomic.CompareAndSwapPointer over an unsafe.Pointer result to stay safe under a multi-worker
// thread pool, entry is mutated directly: a Group's entries are only ever touched from the single
// cooperative goroutine that drives its Executor.
type entry struct {
	key    Key
	state  entryState
	value  Result
	err    error
	wakers []future.Waker
}

func newEntry(key Key) *entry {
	return &entry{key: key}
}

// Key returns the key this entry loads.
func (e *entry) Key() Key {
	return e.key
}

// complete resolves the entry with a loaded value, waking every future.Waker recorded by a
// future that polled it while pending.
func (e *entry) complete(value Result) error {
	if e.state != entryPending {
		return fmt.Errorf("coalesce: entry for key %v was already completed", e.key)
	}
	e.state, e.value = entryValue, value
	return e.wake()
}

// setErr resolves the entry with a failure.
func (e *entry) setErr(err error) error {
	if e.state != entryPending {
		return fmt.Errorf("coalesce: entry for key %v was already completed", e.key)
	}
	e.state, e.err = entryErr, err
	return e.wake()
}

func (e *entry) wake() error {
	wakers := e.wakers
	e.wakers = nil
	for _, waker := range wakers {
		if err := waker.Wake(); err != nil {
			return err
		}
	}
	return nil
}

// future returns a future.Future that resolves to the value (or error) this entry eventually
// completes with.
func (e *entry) future() future.Future {
	if e.state == entryPending {
		return &entryFuture{entry: e}
	}
	if e.state == entryErr {
		return future.Err(e.err)
	}
	return future.Ready(e.value)
}

// entryFuture is the pending-time view of an entry: once resolved, subsequent calls to
// entry.future bypass it entirely (see above), matching how the teacher's resultFuture handed out
// future.Ready/future.Err directly for an already-completed Task.
type entryFuture struct {
	entry *entry
	armed bool
	slot  int
}

var _ future.Future = (*entryFuture)(nil)

// Poll implements future.Future.
func (f *entryFuture) Poll(waker future.Waker) (future.PollResult, error) {
	e := f.entry
	switch e.state {
	case entryPending:
		if !f.armed {
			f.slot = len(e.wakers)
			e.wakers = append(e.wakers, waker)
			f.armed = true
		} else {
			e.wakers[f.slot] = waker
		}
		return future.PollResultPending, nil
	case entryErr:
		return nil, e.err
	default:
		return e.value, nil
	}
}
