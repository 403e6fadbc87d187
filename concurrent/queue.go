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

package concurrent

import (
	"fmt"

	"github.com/botobag/asyncrt/concurrent/future"
)

// readyQueue is a fixed-capacity cyclic-buffer FIFO of futures awaiting a poll. It is not safe for
// concurrent use -- the executor that owns it is itself single-threaded.
type readyQueue struct {
	data       []future.Future
	head, tail int
	size       int
}

func newReadyQueue(capacity int) *readyQueue {
	return &readyQueue{data: make([]future.Future, capacity)}
}

func (q *readyQueue) empty() bool {
	return q.size == 0
}

func (q *readyQueue) full() bool {
	return q.size == len(q.data)
}

// enqueue appends f to the queue. It panics if f is nil or the queue is already at capacity --
// both are caller bugs, not recoverable runtime conditions: a nil future can never have been
// produced by this package's own combinators, and overflow means the executor was created with too
// small a capacity for the workload it was given.
func (q *readyQueue) enqueue(f future.Future) {
	if f == nil {
		panic("concurrent: attempted to enqueue a nil future")
	}
	if q.full() {
		panic(fmt.Sprintf("concurrent: ready queue capacity (%d) exceeded", len(q.data)))
	}
	q.data[q.head] = f
	q.head = (q.head + 1) % len(q.data)
	q.size++
}

// dequeue removes and returns the oldest queued future, or (nil, false) if the queue is empty.
func (q *readyQueue) dequeue() (future.Future, bool) {
	if q.empty() {
		return nil, false
	}
	f := q.data[q.tail]
	q.data[q.tail] = nil
	q.tail = (q.tail + 1) % len(q.data)
	q.size--
	return f, true
}
