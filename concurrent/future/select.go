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

import (
	"errors"
	"fmt"
)

// whichCompleted tracks which of Select's two children has reached a terminal state so far.
type whichCompleted int

const (
	selectNone whichCompleted = iota
	selectFailedFut1
	selectFailedFut2
	selectFailedBoth
	selectCompletedFut1
	selectCompletedFut2
)

// selectFuture races fut1 and fut2, resolving with whichever finishes first.
type selectFuture struct {
	fut1, fut2    Future
	enqueued      bool
	parentWaker   Waker
	whichComplete whichCompleted
	okValue       PollResult
	firstErr      error
	bothErr       error
	sub1, sub2    *selectSubFuture
}

// Select returns a Future that races f1 and f2 -- each enqueued as an independent internal task --
// and resolves with the value of whichever finishes first. The losing branch is marked unneeded and
// stops being polled; it is finally disposed of by the owning executor's shutdown drain. If both
// children fail, Select fails wrapping both causes with ErrSelectBoth; if exactly one fails while
// the other is still racing, Select waits for the other to also finish before reporting which one
// actually determines the outcome.
func Select(f1, f2 Future) Future {
	return &selectFuture{fut1: f1, fut2: f2}
}

// Poll implements Future.
func (f *selectFuture) Poll(waker Waker) (PollResult, error) {
	if !f.enqueued {
		f.enqueued = true
		f.parentWaker = waker

		f.sub1 = &selectSubFuture{parent: f, subtask: f.fut1, which: joinSubFirst}
		f.sub2 = &selectSubFuture{parent: f, subtask: f.fut2, which: joinSubSecond}
		f.sub1.other = f.sub2
		f.sub2.other = f.sub1

		if err := waker.Enqueue(f.sub1); err != nil {
			return nil, err
		}
		if err := waker.Enqueue(f.sub2); err != nil {
			return nil, err
		}
		return PollResultPending, nil
	}

	switch f.whichComplete {
	case selectFailedBoth:
		return nil, fmt.Errorf("%w: %w", ErrSelectBoth, f.bothErr)
	case selectCompletedFut1, selectCompletedFut2:
		return f.okValue, nil
	default:
		// Woken spuriously before either side has actually settled; remain pending.
		return PollResultPending, nil
	}
}

// Disposer is implemented by futures that hold internal, uncounted sub-tasks which may still be
// sitting on the executor's ready queue, unpolled, when the executor shuts down. A selectFuture
// implements it for the case where Select itself is still sitting in the queue, not yet polled even
// once (so its sub-futures don't exist yet); a selectSubFuture implements it directly for the case
// where Select already split into sub-tasks and one of them -- winner or loser alike -- is what the
// shutdown drain actually finds still queued.
type Disposer interface {
	DisposeOrphans()
}

var _ Disposer = (*selectFuture)(nil)
var _ Disposer = (*selectSubFuture)(nil)

// DisposeOrphans releases both of a Select's sub-futures once its first Poll has created them. It
// is a no-op when Poll was never called (sub1/sub2 are nil -- nothing to release) and when both sub-futures have already
// been retired normally.
func (f *selectFuture) DisposeOrphans() {
	if f.sub1 != nil {
		f.sub1.Dispose()
	}
	if f.sub2 != nil {
		f.sub2.Dispose()
	}
}

// selectSubFuture wraps one of Select's two children as an internal, uncounted task.
type selectSubFuture struct {
	parent   *selectFuture
	subtask  Future
	other    *selectSubFuture
	which    joinSub
	unneeded bool
	disposed bool
}

// Poll implements Future. The executor polls this like any other enqueued task; it never counts
// toward the outstanding-task total Run uses to decide when all work is done.
func (s *selectSubFuture) Poll(waker Waker) (PollResult, error) {
	if s.unneeded {
		return PollResultPending, nil
	}

	result, err := s.subtask.Poll(waker)
	if err == nil && result == PollResultPending {
		return PollResultPending, nil
	}

	parent := s.parent
	failedSentinel, completedSentinel := selectFailedFut1, selectCompletedFut1
	if s.which == joinSubSecond {
		failedSentinel, completedSentinel = selectFailedFut2, selectCompletedFut2
	}

	if err != nil {
		switch parent.whichComplete {
		case selectNone:
			parent.whichComplete = failedSentinel
			parent.firstErr = err
		default:
			parent.whichComplete = selectFailedBoth
			parent.bothErr = errors.Join(parent.firstErr, err)
			if wakeErr := parent.parentWaker.Wake(); wakeErr != nil {
				return nil, wakeErr
			}
		}
		return PollResultPending, nil
	}

	parent.okValue = result
	parent.whichComplete = completedSentinel
	s.other.unneeded = true
	if wakeErr := parent.parentWaker.Wake(); wakeErr != nil {
		return nil, wakeErr
	}
	return PollResultPending, nil
}

// Dispose releases a losing sub-future that never got re-polled after being marked unneeded. Safe
// to call more than once and safe to call on a sub-future that was never marked unneeded (e.g. the
// winner, which the executor simply stops tracking).
func (s *selectSubFuture) Dispose() {
	s.disposed = true
}

// DisposeOrphans implements Disposer directly on the sub-future itself, for the case where the
// executor's shutdown drain finds a raw selectSubFuture still sitting in the ready queue -- rather
// than the parent selectFuture, which (per the ordering traced in the executor's drain loop) is
// usually what's left when a Select hasn't been polled at all yet.
func (s *selectSubFuture) DisposeOrphans() {
	s.Dispose()
}
