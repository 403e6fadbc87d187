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

package reactor

import "errors"

var (
	// ErrClosed is returned by any operation attempted on a Reactor after Close.
	ErrClosed = errors.New("reactor: closed")

	// ErrAlreadyRegistered is returned by Register when the descriptor is already tracked.
	ErrAlreadyRegistered = errors.New("reactor: descriptor already registered")

	// ErrNotRegistered is returned by Unregister when the descriptor isn't tracked.
	ErrNotRegistered = errors.New("reactor: descriptor not registered")

	// ErrDescriptorOutOfRange is returned by Register when fd is negative. Register applies no
	// upper bound to fd.
	ErrDescriptorOutOfRange = errors.New("reactor: descriptor out of range")
)
