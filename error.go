// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package kfd

import (
	"errors"
	"syscall"
)

// Error records a failed kernel call together with the errno it returned.
type Error struct {
	Op    string        // name of the system call, e.g. "inotify_add_watch"
	Errno syscall.Errno // raw kernel error number
	Err   error         // set instead of Errno when no system call took place
}

// NewError gives new *Error for the given operation. It returns nil if err
// is nil. A syscall.Errno is stored as-is, any other error is kept in Err.
func NewError(op string, err error) error {
	if err == nil {
		return nil
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &Error{Op: op, Errno: errno}
	}
	return &Error{Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Errno.Error()
}

// Unwrap makes errors.Is(err, unix.ENOENT) and friends work.
func (e *Error) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Errno
}

// Code gives the raw kernel error number. It is 0 when the error did not
// come from the kernel.
func (e *Error) Code() int {
	return int(e.Errno)
}

// Ret folds a result of a kernel call into the C convention used by the
// original support library: n on success and -errno on failure. Errors
// without an errno are reported as -EINVAL.
func Ret(n int, err error) int {
	if err == nil {
		return n
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return -int(errno)
	}
	return -int(syscall.EINVAL)
}

// Errno extracts the errno carried by err, if any.
func Errno(err error) (syscall.Errno, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno, true
	}
	return 0, false
}
