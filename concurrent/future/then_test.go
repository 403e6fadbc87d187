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

package future_test

import (
	"errors"

	"github.com/botobag/asyncrt/concurrent/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Then: sequence two futures", func() {
	It("runs the second future with the first's value and resolves to the second's value", func() {
		f := future.Then(future.Ready(21), func(v any) future.Future {
			return future.Ready(v.(int) * 2)
		})

		d := newMiniDriver()
		result, err := d.runToCompletion(f)
		Expect(err).Should(BeNil())
		Expect(result).Should(Equal(42))
	})

	It("never calls next if the first future fails", func() {
		cause := errors.New("first failed")
		called := false
		f := future.Then(future.Err(cause), func(v any) future.Future {
			called = true
			return future.Ready(v)
		})

		d := newMiniDriver()
		_, err := d.runToCompletion(f)
		Expect(err).Should(HaveOccurred())
		Expect(errors.Is(err, future.ErrThenFut1)).Should(BeTrue())
		Expect(errors.Is(err, cause)).Should(BeTrue())
		Expect(called).Should(BeFalse())
	})

	It("fails with ErrThenFut2 when the second future fails", func() {
		cause := errors.New("second failed")
		f := future.Then(future.Ready(1), func(any) future.Future {
			return future.Err(cause)
		})

		d := newMiniDriver()
		_, err := d.runToCompletion(f)
		Expect(errors.Is(err, future.ErrThenFut2)).Should(BeTrue())
		Expect(errors.Is(err, cause)).Should(BeTrue())
	})

	It("waits for the first future to be explicitly completed before running the second", func() {
		first := &completeOnNotify{}
		f := future.Then(first, func(v any) future.Future {
			return future.Ready(v.(string) + " world")
		})

		d := newMiniDriver()
		d.ready = append(d.ready, f)

		// First turn: Then polls `first`, which is still pending and stashes the waker it was
		// given -- which is the root `f`'s own waker, since Then polls its children directly.
		task := d.ready[0]
		d.ready = d.ready[1:]
		result, err := task.Poll(d.wakerFor(task))
		Expect(err).Should(BeNil())
		Expect(result).Should(Equal(future.PollResultPending))

		Expect(first.Complete("hello")).Should(Succeed())

		finalResult, finalErr := d.runToCompletion(f)
		Expect(finalErr).Should(BeNil())
		Expect(finalResult).Should(Equal("hello world"))
	})
})
