// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

//go:build !linux

package signalfd

import (
	"errors"

	"github.com/JekaMas/kfd"
)

// Handle is an open signalfd. Not available on this platform.
type Handle struct{}

func unsupported(op string) error {
	return &kfd.Error{Op: op, Err: errors.ErrUnsupported}
}

// Open is not supported on this platform.
func Open(set Set, flags kfd.Flags) (*Handle, error) {
	return nil, unsupported("signalfd")
}

func (h *Handle) Fd() int                   { return -1 }
func (h *Handle) Flags() kfd.Flags          { return 0 }
func (h *Handle) Set() Set                  { return Set{} }
func (h *Handle) SetMask(Set) error         { return unsupported("signalfd") }
func (h *Handle) Read([]byte) (int, error)  { return 0, unsupported("read") }
func (h *Handle) ReadInfo() ([]Info, error) { return nil, unsupported("read") }
func (h *Handle) Close() error              { return nil }

// Block is not supported on this platform.
func Block(Set) error { return unsupported("pthread_sigmask") }

// Unblock is not supported on this platform.
func Unblock(Set) error { return unsupported("pthread_sigmask") }

// Blocked is not supported on this platform.
func Blocked() (Set, error) { return Set{}, unsupported("pthread_sigmask") }
