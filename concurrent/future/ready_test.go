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

var _ = Describe("Ready and Err", func() {
	It("Ready resolves with its value on the very first poll", func() {
		f := future.Ready(42)
		result, err := f.Poll(future.NopWaker)
		Expect(err).Should(BeNil())
		Expect(result).Should(Equal(42))
	})

	It("Err fails with its cause on the very first poll", func() {
		cause := errors.New("boom")
		f := future.Err(cause)
		_, err := f.Poll(future.NopWaker)
		Expect(err).Should(MatchError(cause))
	})
})

var _ = Describe("Capture", func() {
	It("records a successful terminal value", func() {
		wrapped, state := future.Capture(future.Ready("hello"))
		result, err := wrapped.Poll(future.NopWaker)

		Expect(err).Should(BeNil())
		Expect(result).Should(Equal("hello"))
		Expect(state.Resolved()).Should(BeTrue())
		Expect(state.Value()).Should(Equal("hello"))
		Expect(state.Err()).Should(BeNil())
	})

	It("records a failure", func() {
		cause := errors.New("boom")
		wrapped, state := future.Capture(future.Err(cause))
		_, err := wrapped.Poll(future.NopWaker)

		Expect(err).Should(MatchError(cause))
		Expect(state.Resolved()).Should(BeTrue())
		Expect(state.Err()).Should(MatchError(cause))
	})

	It("leaves the state unresolved while the wrapped future is pending", func() {
		wrapped, state := future.Capture(&completeOnNotify{})
		result, err := wrapped.Poll(future.NopWaker)

		Expect(err).Should(BeNil())
		Expect(result).Should(Equal(future.PollResultPending))
		Expect(state.Polled()).Should(BeTrue())
		Expect(state.Resolved()).Should(BeFalse())
	})
})
