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
	"fmt"

	"github.com/botobag/asyncrt/concurrent/future"

	. "github.com/onsi/gomega"
)

// completeOnNotify is a future that only reaches a terminal state once Complete or SetErr is
// called, letting a test control exactly when (and in what order) things finish.
type completeOnNotify struct {
	value     interface{}
	err       error
	waker     future.Waker
	completed bool
	polled    bool
}

func (f *completeOnNotify) Poll(waker future.Waker) (future.PollResult, error) {
	if !f.completed {
		f.waker = waker
		return future.PollResultPending, nil
	}

	Expect(f.polled).Should(BeFalse())
	f.polled = true

	if f.err != nil {
		return nil, f.err
	}
	return f.value, nil
}

func (f *completeOnNotify) Complete(value interface{}) error {
	Expect(f.completed).Should(BeFalse())
	f.completed = true
	f.value = value
	Expect(f.waker).ShouldNot(BeNil())
	return f.waker.Wake()
}

func (f *completeOnNotify) SetErr(err error) error {
	Expect(f.completed).Should(BeFalse())
	f.completed = true
	f.err = err
	Expect(f.waker).ShouldNot(BeNil())
	return f.waker.Wake()
}

// miniDriver is a deliberately tiny stand-in for the real cooperative executor in the sibling
// concurrent package, just enough to drive Then/Join/Select scenarios in this package's own tests
// without depending on that package (which itself depends on this one).
type miniDriver struct {
	ready     []future.Future
	counted   map[future.Future]bool
	outstandg int
}

func newMiniDriver() *miniDriver {
	return &miniDriver{counted: make(map[future.Future]bool)}
}

func (d *miniDriver) wakerFor(f future.Future) future.Waker {
	return future.WakerFunc{
		WakeFunc: func() error {
			d.ready = append(d.ready, f)
			return nil
		},
		SpawnFunc: func(child future.Future) error {
			d.outstandg++
			d.counted[child] = true
			d.ready = append(d.ready, child)
			return nil
		},
		EnqueueFunc: func(child future.Future) error {
			d.ready = append(d.ready, child)
			return nil
		},
	}
}

// runToCompletion polls f (and anything it spawns/enqueues) until f reaches a terminal state,
// returning its outcome. It panics (test failure) after tooManyTurns iterations to surface a stuck
// scenario rather than hanging.
func (d *miniDriver) runToCompletion(f future.Future) (future.PollResult, error) {
	const tooManyTurns = 10000

	d.ready = append(d.ready, f)
	for turn := 0; turn < tooManyTurns; turn++ {
		if len(d.ready) == 0 {
			panic("miniDriver: ready queue starved before root future completed")
		}
		task := d.ready[0]
		d.ready = d.ready[1:]

		result, err := task.Poll(d.wakerFor(task))
		if task == f {
			if err != nil {
				return nil, err
			}
			if result != future.PollResultPending {
				return result, nil
			}
		}
	}
	panic(fmt.Sprintf("miniDriver: root future still pending after %d turns", tooManyTurns))
}
