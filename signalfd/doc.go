// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

// Package signalfd is a thin layer over the Linux signalfd(2) interface,
// which delivers signals as records read from a file descriptor.
//
// A signal is only queued for a signalfd when it is blocked; otherwise it
// goes through the normal disposition, which in a Go program means the
// runtime's handler. Since the Go runtime multiplexes goroutines over many
// threads, the reliable pattern is to pin a goroutine to its thread, block
// the signals on that thread and read from the same thread:
//
//	runtime.LockOSThread()
//	defer runtime.UnlockOSThread()
//
//	set, _ := signalfd.NewSet(unix.SIGUSR1)
//	if err := signalfd.Block(set); err != nil {
//		return err
//	}
//	defer signalfd.Unblock(set)
//
//	h, err := signalfd.Open(set, kfd.CloseOnExec)
//	if err != nil {
//		return err
//	}
//	defer h.Close()
//
//	infos, err := h.ReadInfo()
//
// Records are decoded with Decode, which is pure and available on every
// platform.
package signalfd
