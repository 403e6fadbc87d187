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

// thenStage identifies which child a thenFuture is currently driving.
type thenStage int

const (
	thenStageFirst thenStage = iota
	thenStageSecond
)

// thenFuture runs fut1 to completion, feeds its value to next to produce fut2, then runs fut2 to
// completion and reports its outcome as the Then future's own outcome.
//
// Unlike Join and Select, a Then future never spawns its children as independent tasks: it holds
// and polls them directly, one at a time, using the exact waker it was itself given. This keeps
// sequencing cheap -- there's no reason to pay for a second task slot on the executor's ready queue
// when the two steps are strictly ordered anyway.
type thenFuture struct {
	stage thenStage
	fut1  Future
	next  func(any) Future
	fut2  Future
}

// Then returns a Future that polls f1 to completion, passes its resolved value to next to obtain a
// second future, then polls that second future to completion. The Then future fails if f1 fails
// (wrapping the cause with ErrThenFut1) or if the future returned by next fails (wrapping the cause
// with ErrThenFut2); next itself is never called unless f1 completes successfully.
//
// next takes a continuation rather than a second, already-constructed Future reference: the second
// future usually depends on the first's resolved value (a lookup keyed by a prior result, say), so a
// caller would otherwise have to build it eagerly with a value that doesn't exist yet. This is the
// same sequencing Then describes, just expressed the idiomatic Go way.
func Then(f1 Future, next func(any) Future) Future {
	return &thenFuture{stage: thenStageFirst, fut1: f1, next: next}
}

// Poll implements Future.
func (f *thenFuture) Poll(waker Waker) (PollResult, error) {
	if f.stage == thenStageFirst {
		result, err := f.fut1.Poll(waker)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrThenFut1, err)
		}
		if result == PollResultPending {
			return PollResultPending, nil
		}

		f.fut2 = f.next(result)
		f.fut1 = nil
		f.stage = thenStageSecond
	}

	result, err := f.fut2.Poll(waker)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrThenFut2, err)
	}
	return result, nil
}
