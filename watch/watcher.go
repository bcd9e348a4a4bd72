// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package watch

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Watcher watches a set of paths and delivers events for them.
//
// Watching a directory reports events for its direct entries. Paths passed
// to Watch and Unwatch are made absolute and clean.
type Watcher interface {
	// Watch adds path for the given events, or all platform-independent
	// events if none are given. Watching an already watched path replaces
	// its event set.
	Watch(path string, events ...Event) error

	// Unwatch removes path.
	Unwatch(path string) error

	// Events gives the channel events are delivered on. It is closed by Close.
	Events() <-chan EventInfo

	// Errors gives the channel non-fatal errors, like ErrOverflow, are
	// delivered on. Errors are dropped when nobody receives them.
	Errors() <-chan error

	// Close stops the watcher and releases its resources.
	Close() error
}

type options struct {
	log    *slog.Logger
	buffer int
}

// Option configures a Watcher.
type Option func(*options)

// WithLogger sets the logger used for diagnostics. The default is
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.log = logger
		}
	}
}

// WithBuffer sets the capacity of the event channel. The default is 128.
func WithBuffer(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.buffer = n
		}
	}
}

// New gives new Watcher.
//
// The implementation must be provided by each supported platform as
// newWatcher.
func New(opts ...Option) (Watcher, error) {
	o := options{log: slog.Default(), buffer: 128}
	for _, opt := range opts {
		opt(&o)
	}
	return newWatcher(o)
}

func abs(path string) (string, error) {
	p, err := filepath.Abs(path)
	if err != nil {
		return "", &os.PathError{Op: "watch", Path: path, Err: err}
	}
	return p, nil
}
