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

// A PollResult is the value a Future's Poll produced, or the PollResultPending sentinel.
//
// Every Poll call resolves to one of three outcomes: pending (more polls are needed), completed (a
// PollResult other than PollResultPending, with a nil error), or failed (a non-nil error; the
// PollResult returned alongside it carries no meaning and should be nil).
type PollResult interface{}

// pollPendingResult serves as the type for PollResultPending.
type pollPendingResult int

// pollResult is not needed to satisfy PollResult, which is an empty interface every value
// satisfies; nothing calls it.
func (pollPendingResult) pollResult() {}

// PollResultPending is a special value recognized by the executor and combinators to indicate that
// the future's value is not ready yet.
const PollResultPending = pollPendingResult(0)
