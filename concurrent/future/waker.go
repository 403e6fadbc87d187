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

package future

// A Waker is a handle to "wake up" a Future that was previously polled to pending. Practically, it
// notifies the executor to place the associated future back on the queue of ready tasks.
//
// A Waker is conceptually the pair (executor reference, future reference): a cheap, by-value token
// that borrows but does not own either side, and remains valid as long as both the executor and the
// future it targets are still alive.
type Waker interface {
	// Wake indicates the associated task is ready to make progress and should be polled again.
	//
	// Executors maintain a queue of "ready" tasks; Wake places the associated task onto that queue.
	// Firing a waker for a future that is already queued, or that is currently being polled, would
	// violate the executor's at-most-one-reference invariant -- callers that might double-fire (the
	// Join and Select combinators) must guard against it themselves.
	Wake() error

	// Spawn hands f to the same executor this waker targets, as an independent top-level task.
	//
	// This is how the Join combinator turns its children into concurrently progressing tasks on its
	// first poll: it doesn't hold an executor reference directly, only the waker handed to it by
	// whoever polled it, so Spawn is the capability that lets it reach the executor. Spawned futures
	// count toward the executor's outstanding-task total.
	Spawn(f Future) error

	// Enqueue arms a fresh waker bound to f and immediately fires it, placing f on the executor's
	// ready queue without counting it toward the outstanding-task total.
	//
	// This is how Select turns its two children into internal tasks that progress independently of
	// the parent: unlike Spawn, an enqueued future is not tracked as something Run waits on or the
	// busy-spin detector considers when deciding whether the reactor has any descriptor left to wait
	// on -- its lifetime is the parent combinator's responsibility, including disposing of a losing
	// branch still sitting in the queue when the executor shuts down.
	Enqueue(f Future) error
}

// WakerFunc adapts a trio of ordinary functions to the Waker interface.
type WakerFunc struct {
	WakeFunc    func() error
	SpawnFunc   func(Future) error
	EnqueueFunc func(Future) error
}

// Wake implements Waker.
func (f WakerFunc) Wake() error {
	if f.WakeFunc == nil {
		return nil
	}
	return f.WakeFunc()
}

// Spawn implements Waker.
func (f WakerFunc) Spawn(future Future) error {
	if f.SpawnFunc == nil {
		return ErrSpawnUnsupported
	}
	return f.SpawnFunc(future)
}

// Enqueue implements Waker.
func (f WakerFunc) Enqueue(future Future) error {
	if f.EnqueueFunc == nil {
		return ErrSpawnUnsupported
	}
	return f.EnqueueFunc(future)
}

// nopWaker is the type for NopWaker.
type nopWaker int

func (nopWaker) Wake() error { return nil }

func (nopWaker) Spawn(Future) error { return ErrSpawnUnsupported }

func (nopWaker) Enqueue(Future) error { return ErrSpawnUnsupported }

// NopWaker is a Waker that does nothing: Wake is a no-op and Spawn always fails. Useful as a
// placeholder value for leaf futures under test that are never expected to yield.
const NopWaker nopWaker = 0
