// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

// Package kfd holds the pieces shared by the inotify and signalfd packages:
// descriptor creation flags and the error type every failed kernel call is
// reported with.
//
// The packages never close a descriptor behind the caller's back. Each handle
// returned by an Open function must be released with its Close method:
//
//	h, err := inotify.Open(kfd.NonBlock | kfd.CloseOnExec)
//	if err != nil {
//	  log.Fatal(err)
//	}
//	defer h.Close()
//
// # Errors
//
// A failed kernel call is reported as *Error, which carries the raw errno.
// Use errors.Is to test for a particular errno value:
//
//	if _, err := h.AddWatch("/no/such/file", inotify.InCreate); errors.Is(err, unix.ENOENT) {
//	  ...
//	}
//
// Callers living across a foreign-function boundary can use Ret to fold
// a result and an error into the C convention, where a negative value is
// the negated errno.
package kfd
