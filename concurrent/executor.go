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

// Package concurrent provides a single-threaded, cooperative task executor. Futures (see the
// future subpackage) are polled to completion on one goroutine; when a future has no progress to
// report it suspends by registering interest -- typically with the reactor subpackage's OS-readiness
// notifier -- and the executor moves on to other ready work instead of spinning.
package concurrent

import (
	"fmt"

	"github.com/botobag/asyncrt/concurrent/future"
	"github.com/botobag/asyncrt/concurrent/reactor"
)

// Executor runs a fixed-capacity pool of cooperatively scheduled futures to completion. It is not
// safe for concurrent use: Spawn and Run are meant to be driven from a single goroutine, mirroring
// the single-threaded event loop it implements.
type Executor struct {
	cfg         config
	queue       *readyQueue
	reactor     *reactor.Reactor
	ownsReactor bool

	// outstanding counts top-level tasks handed to Spawn (directly by the caller, or internally by
	// future.Join's sub-future spawning) that have not yet reached a terminal state. Run exits once
	// this reaches zero. Tasks scheduled via a Waker's Enqueue method -- Select's losing-branch
	// bookkeeping -- are deliberately NOT counted here, matching the distinction the underlying
	// design draws between a counted spawn and an uncounted wake.
	outstanding int
	closed      bool
}

// New creates an Executor whose ready queue holds at most capacity pending futures at once.
func New(capacity int, opts ...Option) (*Executor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Executor{
		cfg:   cfg,
		queue: newReadyQueue(capacity),
	}

	if cfg.reactor != nil {
		e.reactor = cfg.reactor
	} else {
		r, err := reactor.New()
		if err != nil {
			return nil, fmt.Errorf("concurrent: creating reactor: %w", err)
		}
		e.reactor = r
		e.ownsReactor = true
	}

	return e, nil
}

// Reactor returns the reactor this executor polls when its ready queue is empty, so that leaf
// futures (reactor.ReadPipe, reactor.WritePipe, or caller-defined ones) can register against it.
func (e *Executor) Reactor() *reactor.Reactor {
	return e.reactor
}

// Spawn hands f to the executor as an independent top-level task, counted toward the outstanding
// total that Run drains. This is the same accounting future.Join's internal sub-futures go through
// when the executor's own Waker.Spawn is invoked on their behalf -- from the executor's point of
// view a user-spawned future and a Join-spawned one are indistinguishable.
//
// Calling Spawn while Run is in progress is supported only from within a future's Poll on the
// executor's own goroutine; calling it from anywhere else after Run has begun is unsupported.
func (e *Executor) Spawn(f future.Future) error {
	if e.closed {
		return ErrClosed
	}
	if f == nil {
		return ErrSpawnNil
	}
	e.queue.enqueue(f)
	e.outstanding++
	e.cfg.logger.Debug().Int("outstanding", e.outstanding).Msg("concurrent: spawned task")
	return nil
}

// enqueue schedules f as an uncounted internal task -- used for future.Waker.Enqueue, and for
// redelivering a future that a prior poll left pending.
func (e *Executor) enqueue(f future.Future) error {
	if e.closed {
		return ErrClosed
	}
	e.queue.enqueue(f)
	return nil
}

// wakerFor returns a Waker bound to f: Wake reschedules f itself, Spawn hands off a new counted
// top-level task, and Enqueue hands off a new uncounted one.
func (e *Executor) wakerFor(f future.Future) future.Waker {
	return future.WakerFunc{
		WakeFunc: func() error {
			return e.enqueue(f)
		},
		SpawnFunc: func(child future.Future) error {
			return e.Spawn(child)
		},
		EnqueueFunc: func(child future.Future) error {
			return e.enqueue(child)
		},
	}
}

// Run drives the executor's main loop until every top-level task spawned (directly or via a Join)
// has reached a terminal state. It dequeues and polls ready futures one at a time; when the ready
// queue is empty but tasks remain outstanding, it blocks on the reactor waiting for an OS readiness
// event to produce more ready work.
func (e *Executor) Run() error {
	if e.closed {
		return ErrClosed
	}

	for e.outstanding > 0 {
		f, ok := e.queue.dequeue()
		if !ok {
			if e.reactor.Len() == 0 {
				e.cfg.logger.Error().
					Int("outstanding", e.outstanding).
					Msg("concurrent: ready queue empty and reactor has no registered descriptors; deadlocked")
				panic("concurrent: executor deadlocked -- outstanding tasks but nothing can ever wake them")
			}
			if err := e.reactor.Poll(e.cfg.pollTimeout); err != nil {
				e.cfg.logger.Error().Err(err).Msg("concurrent: polling reactor failed")
				panic(fmt.Sprintf("concurrent: polling reactor: %v", err))
			}
			continue
		}

		result, err := f.Poll(e.wakerFor(f))
		if err != nil {
			e.outstanding--
			e.cfg.logger.Debug().Err(err).Int("outstanding", e.outstanding).Msg("concurrent: task failed")
			continue
		}
		if result == future.PollResultPending {
			continue
		}
		e.outstanding--
		e.cfg.logger.Debug().Int("outstanding", e.outstanding).Msg("concurrent: task completed")
	}

	return nil
}

// Close shuts the executor down. Any futures still sitting in the ready queue -- orphaned losers of
// a future.Select whose sibling already won -- are given a chance to release their resources via the
// future.Disposer interface before the reactor and queue are torn down. Close is idempotent.
func (e *Executor) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	for {
		f, ok := e.queue.dequeue()
		if !ok {
			break
		}
		if d, ok := f.(future.Disposer); ok {
			d.DisposeOrphans()
		}
	}

	if e.ownsReactor {
		return e.reactor.Close()
	}
	return nil
}
