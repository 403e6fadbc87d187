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

package concurrent_test

import (
	"errors"

	"github.com/botobag/asyncrt/concurrent"
	"github.com/botobag/asyncrt/concurrent/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Executor", func() {
	It("runs a single spawned future to completion", func() {
		e, err := concurrent.New(8)
		Expect(err).Should(BeNil())
		defer e.Close()

		captured, state := future.Capture(future.Ready(42))
		Expect(e.Spawn(captured)).Should(Succeed())
		Expect(e.Run()).Should(Succeed())

		Expect(state.Resolved()).Should(BeTrue())
		Expect(state.Value()).Should(Equal(42))
	})

	It("drives a Then/Join/Select pipeline spawned as top-level tasks", func() {
		e, err := concurrent.New(8)
		Expect(err).Should(BeNil())
		defer e.Close()

		joined := future.Join(future.Ready(1), future.Ready(2))
		thenJoined := future.Then(joined, func(v any) future.Future {
			pair := v.(future.JoinResult)
			return future.Ready(pair.First.(int) + pair.Second.(int))
		})
		raced := future.Select(future.Ready("winner"), future.Ready("also ready"))

		capturedThen, thenState := future.Capture(thenJoined)
		capturedSelect, selectState := future.Capture(raced)

		Expect(e.Spawn(capturedThen)).Should(Succeed())
		Expect(e.Spawn(capturedSelect)).Should(Succeed())
		Expect(e.Run()).Should(Succeed())

		Expect(thenState.Resolved()).Should(BeTrue())
		Expect(thenState.Value()).Should(Equal(3))

		Expect(selectState.Resolved()).Should(BeTrue())
		Expect(selectState.Value()).Should(Equal("winner"))
	})

	It("propagates a failing future's error without stopping the loop", func() {
		e, err := concurrent.New(8)
		Expect(err).Should(BeNil())
		defer e.Close()

		boom := errors.New("boom")
		failing, failState := future.Capture(future.Err(boom))
		succeeding, okState := future.Capture(future.Ready("fine"))

		Expect(e.Spawn(failing)).Should(Succeed())
		Expect(e.Spawn(succeeding)).Should(Succeed())
		Expect(e.Run()).Should(Succeed())

		Expect(failState.Err()).Should(MatchError(boom))
		Expect(okState.Value()).Should(Equal("fine"))
	})

	It("rejects a nil spawn", func() {
		e, err := concurrent.New(4)
		Expect(err).Should(BeNil())
		defer e.Close()

		Expect(e.Spawn(nil)).Should(MatchError(concurrent.ErrSpawnNil))
	})

	It("rejects operations once closed", func() {
		e, err := concurrent.New(4)
		Expect(err).Should(BeNil())
		Expect(e.Close()).Should(Succeed())
		// Closing twice is a no-op.
		Expect(e.Close()).Should(Succeed())

		Expect(e.Spawn(future.Ready(1))).Should(MatchError(concurrent.ErrClosed))
		Expect(e.Run()).Should(MatchError(concurrent.ErrClosed))
	})

	It("panics when the ready queue overflows", func() {
		e, err := concurrent.New(1)
		Expect(err).Should(BeNil())
		defer e.Close()

		Expect(e.Spawn(future.Ready(1))).Should(Succeed())
		Expect(func() {
			_ = e.Spawn(future.Ready(2))
		}).Should(Panic())
	})

	It("panics on deadlock when outstanding work can never be woken", func() {
		e, err := concurrent.New(8)
		Expect(err).Should(BeNil())
		defer e.Close()

		// stallFuture always reports pending and never arms any waker, so once the ready queue
		// drains the executor has outstanding work with no registered descriptor and no queued task
		// to ever make progress on it.
		Expect(e.Spawn(stallFuture{})).Should(Succeed())
		Expect(func() {
			_ = e.Run()
		}).Should(Panic())
	})

	It("closes cleanly with an unpolled Select still queued, disposing it via the shutdown drain", func() {
		e, err := concurrent.New(8)
		Expect(err).Should(BeNil())

		// Spawned but never run: the bare selectFuture (not yet split into sub-futures, since it
		// hasn't been polled even once) sits in the ready queue exactly as Close's shutdown drain is
		// meant to handle -- found and released through the Disposer interface instead of being
		// polled one more time. DisposeOrphans is a no-op here since sub1/sub2 don't exist yet.
		raced := future.Select(future.Ready("fast"), stallFuture{})
		Expect(e.Spawn(raced)).Should(Succeed())
		Expect(e.Close()).Should(Succeed())
	})

	It("runs a Select to completion and then closes safely, with its loser already dropped", func() {
		e, err := concurrent.New(8)
		Expect(err).Should(BeNil())

		raced := future.Select(future.Ready("fast"), stallFuture{})
		Expect(e.Spawn(raced)).Should(Succeed())
		Expect(e.Run()).Should(Succeed())
		Expect(e.Close()).Should(Succeed())
	})

	It("disposes a losing Select sub-future found directly in the ready queue at shutdown", func() {
		e, err := concurrent.New(8)
		Expect(err).Should(BeNil())

		// Poll the Select by hand to split it into its two sub-futures, the way the executor would
		// on its first dequeue, but capture them instead of letting them land on a real queue -- this
		// reproduces the case DisposeOrphans is for: a selectSubFuture, not its parent, sitting
		// unpolled in the queue when Close runs.
		var subs []future.Future
		captureEnqueue := future.WakerFunc{EnqueueFunc: func(f future.Future) error {
			subs = append(subs, f)
			return nil
		}}

		raced := future.Select(stallFuture{}, stallFuture{})
		_, err = raced.Poll(captureEnqueue)
		Expect(err).Should(BeNil())
		Expect(subs).Should(HaveLen(2))

		for _, sub := range subs {
			Expect(e.Spawn(sub)).Should(Succeed())
		}
		Expect(e.Close()).Should(Succeed())
	})
})

// stallFuture is a Future that is always pending and never arms a waker -- a deliberately
// unresolvable task, used to exercise the executor's deadlock detector and Select's disposal path.
type stallFuture struct{}

func (stallFuture) Poll(future.Waker) (future.PollResult, error) {
	return future.PollResultPending, nil
}
