// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package kfd

import "strings"

// Flags controls how a new notification descriptor is created.
type Flags uint8

const (
	// NonBlock opens the descriptor with O_NONBLOCK. Handles created with
	// it are read through the Go runtime poller: Read parks the goroutine
	// instead of the thread, and Close unblocks a pending Read. Raw reads
	// returning EAGAIN are only seen by callers reading Fd() themselves.
	NonBlock Flags = 1 << iota

	// CloseOnExec closes the descriptor on execve(2).
	CloseOnExec

	flagsMask = NonBlock | CloseOnExec
)

// Valid reports whether f holds only known flag bits.
func (f Flags) Valid() bool {
	return f&^flagsMask == 0
}

// String implements fmt.Stringer interface.
func (f Flags) String() string {
	var s []string
	if f&NonBlock != 0 {
		s = append(s, "kfd.NonBlock")
	}
	if f&CloseOnExec != 0 {
		s = append(s, "kfd.CloseOnExec")
	}
	if len(s) == 0 {
		return "0"
	}
	return strings.Join(s, "|")
}
