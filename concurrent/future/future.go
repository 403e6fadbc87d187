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

// Package future defines the polled-state-machine abstraction driven by the sibling concurrent
// package's cooperative executor, along with the Then/Join/Select combinators that compose futures.
package future

// A Future represents an asynchronous computation.
//
// The design is borrowed from Rust's Future [0][1][2].
//
// (Following comments are adapted from Rust's Future trait [3])
//
// A Future is a value that may not have finished computing yet. This kind of "asynchronous value"
// makes it possible for a single thread to continue doing useful work while it waits for the value
// to become available.
//
// Futures alone are inert; they must be actively polled to make progress, meaning that each time
// the current task is woken up, the executor should re-poll the futures it still has an interest in.
//
// Poll is not called repeatedly in a tight loop -- instead, it is only called when the future
// indicates that it is ready to make progress (by calling Waker.Wake). If you're familiar with the
// poll(2) or select(2) syscalls on Unix it's worth noting that futures typically do *not* suffer the
// same problem of "all wakeups must poll all events"; they are more like epoll(4): a future only
// arms the one waker bound to it.
//
// An implementation of Poll must return quickly and must never block. A Future wrapping a
// genuinely blocking operation is outside this package's scope -- see reactor for the supported way
// to suspend on an OS-level readiness event instead.
//
// [0]: https://doc.rust-lang.org/std/future/index.html
// [1]: http://aturon.github.io/blog/2016/08/11/futures/
// [2]: https://aturon.github.io/blog/2016/09/07/futures-design/
// [3]: https://github.com/rust-lang/rust/blob/20d694a/src/libcore/future/future.rs#L20
type Future interface {
	// Poll attempts to resolve the future to a final value, registering waker for wakeup if the
	// value is not yet available.
	//
	// This method returns a tuple of (PollResult, error):
	//
	//	* ([any value], err): if err is non-nil, the future has finished with a failure; err carries
	//    the (possibly combinator-wrapped) cause.
	//	* (PollResultPending, nil): the future is not ready yet. It has arranged for waker.Wake to be
	//    called once it can make progress -- either by registering a descriptor with a Reactor, or by
	//    having delegated to a child future that will do so.
	//	* ([value other than PollResultPending], nil): the future finished successfully with a value.
	//
	// Once a future has returned a terminal state (completed or failed), it must not be polled again.
	//
	// On multiple calls to Poll, only the most recently supplied Waker is scheduled to receive a
	// wakeup; a future must discard any previously stored waker when given a new one.
	Poll(waker Waker) (PollResult, error)
}
