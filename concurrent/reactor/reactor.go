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

// Package reactor bridges OS I/O readiness to the future package's Waker abstraction.
//
// A Reactor tracks a set of file descriptors a leaf future cares about, waits on all of them in
// one syscall, and fires the Waker each descriptor was registered with when the OS reports it
// ready. It is driven entirely from the single goroutine the sibling concurrent package's cooperative
// executor runs on, so -- unlike the multi-reader/writer poller this package is modeled on -- it
// carries no locking of its own.
//
// The underlying polling mechanism is platform-specific (epoll on Linux, kqueue on Darwin; see
// poller_linux.go and poller_darwin.go) and is selected automatically at compile time.
package reactor

import (
	"github.com/botobag/asyncrt/concurrent/future"
	"github.com/botobag/asyncrt/iterator"
)

// Event is a bitmask of the I/O readiness conditions a descriptor can be registered for.
type Event uint32

const (
	// EventRead indicates the descriptor is ready to be read from without blocking.
	EventRead Event = 1 << iota
	// EventWrite indicates the descriptor is ready to be written to without blocking.
	EventWrite
)

// platformPoller is the seam between the descriptor-to-waker bookkeeping in this file and the
// OS-specific wait mechanism. Exactly one implementation is compiled in, chosen by build tags.
type platformPoller interface {
	add(fd int, events Event) error
	remove(fd int) error
	wait(timeoutMillis int, ready []int) (int, error)
	close() error
}

// Reactor multiplexes OS readiness notifications for a set of registered file descriptors onto
// the futures waiting on them.
//
// Unlike the C original this runtime is modeled on, a Reactor never stashes a raw pointer to a
// future inside the OS event payload -- Go's garbage collector doesn't allow treating a pointer as
// an opaque integer that can later be recovered from a syscall result. Instead it keeps its own
// table from descriptor to the Waker it was registered with, keyed by the same integer the OS
// hands back in its event list.
type Reactor struct {
	poller platformPoller
	wakers map[int]future.Waker
	order  []int
	ready  []int
	closed bool
}

// New creates a Reactor backed by the platform's native readiness-polling mechanism.
func New() (*Reactor, error) {
	poller, err := newPlatformPoller()
	if err != nil {
		return nil, err
	}
	return &Reactor{
		poller: poller,
		wakers: make(map[int]future.Waker),
	}, nil
}

// Register starts tracking fd for the given events, arming waker once the descriptor becomes
// ready. A descriptor can only be registered once at a time; Unregister it first to change the
// events it's watched for.
func (r *Reactor) Register(fd int, events Event, waker future.Waker) error {
	if r.closed {
		return ErrClosed
	}
	if fd < 0 {
		return ErrDescriptorOutOfRange
	}
	if _, ok := r.wakers[fd]; ok {
		return ErrAlreadyRegistered
	}
	if err := r.poller.add(fd, events); err != nil {
		return err
	}
	r.wakers[fd] = waker
	r.order = append(r.order, fd)
	return nil
}

// Unregister stops tracking fd. It is the caller's responsibility to call this before closing fd,
// since descriptor numbers are recycled by the OS and a stale registration could otherwise be
// woken by an unrelated descriptor reusing the same number.
func (r *Reactor) Unregister(fd int) error {
	if r.closed {
		return ErrClosed
	}
	if _, ok := r.wakers[fd]; !ok {
		return ErrNotRegistered
	}
	if err := r.poller.remove(fd); err != nil {
		return err
	}
	delete(r.wakers, fd)
	for i, registered := range r.order {
		if registered == fd {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports the number of descriptors currently registered.
func (r *Reactor) Len() int {
	return len(r.wakers)
}

// Poll blocks for at most timeoutMillis milliseconds (or indefinitely, if negative) waiting for
// at least one registered descriptor to become ready, then wakes every future whose descriptor
// fired. It is a no-op, returning immediately, if nothing is registered.
func (r *Reactor) Poll(timeoutMillis int) error {
	if r.closed {
		return ErrClosed
	}
	if len(r.wakers) == 0 {
		return nil
	}

	if cap(r.ready) < len(r.wakers) {
		r.ready = make([]int, len(r.wakers))
	}

	n, err := r.poller.wait(timeoutMillis, r.ready[:cap(r.ready)])
	if err != nil {
		return err
	}

	for _, fd := range r.ready[:n] {
		if waker, ok := r.wakers[fd]; ok {
			if err := waker.Wake(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close releases the underlying OS polling instance. It is safe to call more than once.
func (r *Reactor) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.poller.close()
}

// DescriptorIterator iterates over a snapshot of a Reactor's registered descriptors, taken at the
// moment Descriptors was called.
type DescriptorIterator struct {
	fds []int
	pos int
}

// Descriptors returns an iterator over the descriptors currently registered with r.
func (r *Reactor) Descriptors() *DescriptorIterator {
	snapshot := make([]int, len(r.order))
	copy(snapshot, r.order)
	return &DescriptorIterator{fds: snapshot}
}

// Next returns the next registered descriptor, or iterator.Done once the snapshot is exhausted.
func (it *DescriptorIterator) Next() (int, error) {
	if it.pos >= len(it.fds) {
		return 0, iterator.Done
	}
	fd := it.fds[it.pos]
	it.pos++
	return fd, nil
}
