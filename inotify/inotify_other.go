// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

//go:build !linux

package inotify

import (
	"errors"

	"github.com/JekaMas/kfd"
)

// Handle is an open inotify instance. Not available on this platform.
type Handle struct{}

func unsupported(op string) error {
	return &kfd.Error{Op: op, Err: errors.ErrUnsupported}
}

// Open is not supported on this platform.
func Open(flags kfd.Flags) (*Handle, error) {
	return nil, unsupported("inotify_init1")
}

func (h *Handle) Fd() int                           { return -1 }
func (h *Handle) Flags() kfd.Flags                  { return 0 }
func (h *Handle) AddWatch(string, Mask) (WD, error) { return -1, unsupported("inotify_add_watch") }
func (h *Handle) RemoveWatch(WD) error              { return unsupported("inotify_rm_watch") }
func (h *Handle) Read([]byte) (int, error)          { return 0, unsupported("read") }
func (h *Handle) ReadEvents() ([]Event, error)      { return nil, unsupported("read") }
func (h *Handle) Close() error                      { return nil }
