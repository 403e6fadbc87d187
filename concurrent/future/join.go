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

import "fmt"

// JoinResult is the value a successful Join future resolves to: the paired results of its two
// children, in order.
type JoinResult struct {
	First  any
	Second any
}

// joinFuture runs fut1 and fut2 concurrently as independent top-level tasks and resolves once both
// have reached a terminal state.
type joinFuture struct {
	fut1, fut2   Future
	spawned      bool
	parentWaker  Waker
	fut1Done     bool
	fut1Result   PollResult
	fut1Err      error
	fut2Done     bool
	fut2Result   PollResult
	fut2Err      error
}

// Join returns a Future that polls f1 and f2 concurrently -- each spawned as its own task on the
// executor -- and resolves once both have finished. It completes with a JoinResult pairing both
// values if both children succeed. If exactly one child fails, Join fails wrapping that child's
// error with ErrJoinFut1 or ErrJoinFut2; if both fail, it fails wrapping both causes with
// ErrJoinBoth.
func Join(f1, f2 Future) Future {
	return &joinFuture{fut1: f1, fut2: f2}
}

// Poll implements Future.
func (f *joinFuture) Poll(waker Waker) (PollResult, error) {
	if !f.spawned {
		f.spawned = true
		f.parentWaker = waker

		sub1 := &joinSubFuture{parent: f, subtask: f.fut1, which: joinSubFirst}
		sub2 := &joinSubFuture{parent: f, subtask: f.fut2, which: joinSubSecond}
		if err := waker.Spawn(sub1); err != nil {
			return nil, err
		}
		if err := waker.Spawn(sub2); err != nil {
			return nil, err
		}
		return PollResultPending, nil
	}

	switch {
	case f.fut1Err != nil && f.fut2Err != nil:
		return nil, fmt.Errorf("%w: %w: %w", ErrJoinBoth, f.fut1Err, f.fut2Err)
	case f.fut1Err != nil:
		return nil, fmt.Errorf("%w: %w", ErrJoinFut1, f.fut1Err)
	case f.fut2Err != nil:
		return nil, fmt.Errorf("%w: %w", ErrJoinFut2, f.fut2Err)
	default:
		return JoinResult{First: f.fut1Result, Second: f.fut2Result}, nil
	}
}

type joinSub int

const (
	joinSubFirst joinSub = iota
	joinSubSecond
)

// joinSubFuture wraps one of Join's two children so it can be driven as an independent top-level
// task while still reporting its outcome back to the shared parent.
type joinSubFuture struct {
	parent  *joinFuture
	subtask Future
	which   joinSub
}

// Poll implements Future. It is only ever invoked by the executor that owns the task this
// sub-future was spawned as.
func (s *joinSubFuture) Poll(waker Waker) (PollResult, error) {
	result, err := s.subtask.Poll(waker)
	if err == nil && result == PollResultPending {
		return PollResultPending, nil
	}

	switch s.which {
	case joinSubFirst:
		s.parent.fut1Result, s.parent.fut1Err, s.parent.fut1Done = result, err, true
	default:
		s.parent.fut2Result, s.parent.fut2Err, s.parent.fut2Done = result, err, true
	}

	if s.parent.fut1Done && s.parent.fut2Done {
		if wakeErr := s.parent.parentWaker.Wake(); wakeErr != nil {
			return nil, wakeErr
		}
	}

	// Report our own terminal state to the executor so this task slot is retired; the parent
	// observes the same outcome through the fields just recorded above.
	return result, err
}
