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

package coalesce

import "errors"

var (
	errMissingBatcher  = errors.New("coalesce: Batcher is required to construct a Group")
	errMissingExecutor = errors.New("coalesce: Executor is required to construct a Group")
	errMissingKey      = errors.New("coalesce: must specify a key to load")

	// ErrKeyNotLoaded is the failure recorded for a key that a Batcher's result map doesn't mention,
	// mirroring the teacher's "must complete every given task" contract for its BatchLoader.
	ErrKeyNotLoaded = errors.New("coalesce: Batcher did not report a result for the requested key")
)
