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
	"github.com/rs/zerolog"

	"github.com/botobag/asyncrt/concurrent/reactor"
)

// config collects the tunables an Option can set on a new Executor.
type config struct {
	logger      zerolog.Logger
	reactor     *reactor.Reactor
	pollTimeout int
}

func defaultConfig() config {
	return config{
		logger:      zerolog.Nop(),
		pollTimeout: -1,
	}
}

// Option configures an Executor constructed with New.
type Option func(*config)

// WithLogger attaches a structured logger the executor uses to report the busy-spin deadlock
// condition and a failed reactor poll (each before it becomes a panic), and top-level
// spawn/completion transitions at debug level. A ready-queue overflow panics without being logged.
// The default is a disabled logger: omitting this option never changes observable behavior.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithReactor supplies a pre-constructed Reactor for the executor to block on when its ready queue
// drains. If omitted, New constructs one automatically via reactor.New.
func WithReactor(r *reactor.Reactor) Option {
	return func(c *config) { c.reactor = r }
}

// WithPollTimeout bounds how long a single blocking reactor poll may wait, in milliseconds. The
// default, -1, waits indefinitely, which is correct as long as the deadlock check in Run can rule
// out a starved reactor; set this only to bound worst-case latency in a host application that polls
// the executor from outside its own loop.
func WithPollTimeout(millis int) Option {
	return func(c *config) { c.pollTimeout = millis }
}
