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

// readyFuture is a leaf future that resolves to a fixed value on its very first poll.
type readyFuture struct {
	value any
}

// Ready returns a Future that completes successfully with value the first time it is polled.
//
// It never arms a waker: there is nothing to wait for.
func Ready(value any) Future {
	return &readyFuture{value: value}
}

// Poll implements Future.
func (f *readyFuture) Poll(Waker) (PollResult, error) {
	return f.value, nil
}

// errFuture is a leaf future that fails with a fixed error on its very first poll.
type errFuture struct {
	err error
}

// Err returns a Future that fails with err the first time it is polled.
func Err(err error) Future {
	return &errFuture{err: err}
}

// Poll implements Future.
func (f *errFuture) Poll(Waker) (PollResult, error) {
	return nil, f.err
}

// captureState records the terminal outcome of a captured future for later inspection, typically
// from a test once the executor has finished running it.
type captureState struct {
	polled   bool
	value    PollResult
	err      error
	resolved bool
}

// Value returns the value the captured future resolved to, or nil if it hasn't resolved yet or
// failed.
func (c *captureState) Value() PollResult {
	return c.value
}

// Err returns the error the captured future failed with, or nil if it hasn't failed.
func (c *captureState) Err() error {
	return c.err
}

// Resolved reports whether the captured future has reached a terminal state.
func (c *captureState) Resolved() bool {
	return c.resolved
}

// Polled reports whether the captured future has been polled at least once.
func (c *captureState) Polled() bool {
	return c.polled
}

// captureFuture wraps an inner future, recording its terminal outcome into a captureState that the
// caller retains a reference to. This mirrors how a test observes the result of a task spawned onto
// an executor, where nothing else hands the terminal value back to the caller directly.
type captureFuture struct {
	inner Future
	state *captureState
}

// Capture wraps f so that its terminal outcome (value or error) is recorded into the returned
// *captureState once f completes. The returned future otherwise behaves exactly like f: polling it
// polls f and forwards whatever f reports.
func Capture(f Future) (Future, *captureState) {
	state := &captureState{}
	return &captureFuture{inner: f, state: state}, state
}

// Poll implements Future.
func (f *captureFuture) Poll(waker Waker) (PollResult, error) {
	f.state.polled = true
	result, err := f.inner.Poll(waker)
	if err != nil {
		f.state.err = err
		f.state.resolved = true
		return nil, err
	}
	if result == PollResultPending {
		return PollResultPending, nil
	}
	f.state.value = result
	f.state.resolved = true
	return result, nil
}
