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

import "errors"

// Sentinel errors identifying which side of a combinator failed. Combinator failures wrap the
// underlying child error(s) with fmt.Errorf("%w: %w", ...), so both the sentinel and the original
// cause remain reachable through errors.Is/errors.As.
var (
	// ErrThenFut1 marks a Then failure caused by its first child future.
	ErrThenFut1 = errors.New("future: then: first future failed")
	// ErrThenFut2 marks a Then failure caused by its second child future.
	ErrThenFut2 = errors.New("future: then: second future failed")

	// ErrJoinFut1 marks a Join failure caused solely by its first child future.
	ErrJoinFut1 = errors.New("future: join: first future failed")
	// ErrJoinFut2 marks a Join failure caused solely by its second child future.
	ErrJoinFut2 = errors.New("future: join: second future failed")
	// ErrJoinBoth marks a Join failure where both child futures failed.
	ErrJoinBoth = errors.New("future: join: both futures failed")

	// ErrSelectFut1 marks a Select failure caused solely by its first child future.
	ErrSelectFut1 = errors.New("future: select: first future failed")
	// ErrSelectFut2 marks a Select failure caused solely by its second child future.
	ErrSelectFut2 = errors.New("future: select: second future failed")
	// ErrSelectBoth marks a Select failure where both child futures failed.
	ErrSelectBoth = errors.New("future: select: both futures failed")

	// ErrSpawnUnsupported is returned by a Waker whose Spawn capability is unavailable, e.g. the
	// NopWaker or a waker used only for the shutdown disposal protocol.
	ErrSpawnUnsupported = errors.New("future: waker does not support spawning tasks")

	// ErrPolledAfterTerminal indicates a future was polled again after it already reported a
	// terminal (completed or failed) state, violating the executor's contract.
	ErrPolledAfterTerminal = errors.New("future: polled again after reaching a terminal state")
)
