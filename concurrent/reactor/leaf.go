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

//go:build unix

package reactor

import (
	"golang.org/x/sys/unix"

	"github.com/botobag/asyncrt/concurrent/future"
)

// ReadPipe is a leaf future that reads exactly len(buf) bytes from a non-blocking file descriptor,
// registering itself with a Reactor and suspending between attempts instead of blocking the whole
// process the way a direct read(2) call would.
//
// It exists primarily to exercise the Reactor end-to-end: a future wired up with ReadPipe only
// makes progress once the OS actually reports fd readable, not merely because something called its
// Poll method.
type ReadPipe struct {
	reactor    *Reactor
	fd         int
	buf        []byte
	filled     int
	registered bool
}

// NewReadPipe returns a ReadPipe future that fills buf completely by reading from fd through r,
// resolving to the number of bytes read (always len(buf)) once done.
func NewReadPipe(r *Reactor, fd int, buf []byte) *ReadPipe {
	return &ReadPipe{reactor: r, fd: fd, buf: buf}
}

// Poll implements future.Future.
func (f *ReadPipe) Poll(waker future.Waker) (future.PollResult, error) {
	for f.filled < len(f.buf) {
		n, err := unix.Read(f.fd, f.buf[f.filled:])
		if err != nil {
			if err == unix.EAGAIN {
				// Re-register on every pending poll so the reactor holds the most recent waker.
				if f.registered {
					if unregErr := f.reactor.Unregister(f.fd); unregErr != nil {
						return nil, unregErr
					}
					f.registered = false
				}
				if regErr := f.reactor.Register(f.fd, EventRead, waker); regErr != nil {
					return nil, regErr
				}
				f.registered = true
				return future.PollResultPending, nil
			}
			return nil, err
		}
		f.filled += n
	}

	if f.registered {
		if err := f.reactor.Unregister(f.fd); err != nil {
			return nil, err
		}
	}
	return f.filled, nil
}

// WritePipe is a leaf future that writes all of data to a non-blocking file descriptor, the write
// counterpart to ReadPipe, used to give the reactor test something to pair a ReadPipe with via
// future.Join without resorting to a goroutine.
type WritePipe struct {
	reactor    *Reactor
	fd         int
	data       []byte
	written    int
	registered bool
}

// NewWritePipe returns a WritePipe future that writes all of data to fd through r, resolving to the
// number of bytes written (always len(data)) once done.
func NewWritePipe(r *Reactor, fd int, data []byte) *WritePipe {
	return &WritePipe{reactor: r, fd: fd, data: data}
}

// Poll implements future.Future.
func (f *WritePipe) Poll(waker future.Waker) (future.PollResult, error) {
	for f.written < len(f.data) {
		n, err := unix.Write(f.fd, f.data[f.written:])
		if err != nil {
			if err == unix.EAGAIN {
				// Re-register on every pending poll so the reactor holds the most recent waker.
				if f.registered {
					if unregErr := f.reactor.Unregister(f.fd); unregErr != nil {
						return nil, unregErr
					}
					f.registered = false
				}
				if regErr := f.reactor.Register(f.fd, EventWrite, waker); regErr != nil {
					return nil, regErr
				}
				f.registered = true
				return future.PollResultPending, nil
			}
			return nil, err
		}
		f.written += n
	}

	if f.registered {
		if err := f.reactor.Unregister(f.fd); err != nil {
			return nil, err
		}
	}
	return f.written, nil
}
