// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

// Package inotify is a thin layer over the Linux inotify(7) interface.
//
// A Handle owns one inotify instance. Watches are added and removed with
// AddWatch and RemoveWatch, which report kernel failures as *kfd.Error.
// Reading is left to the caller; the bytes returned by a read are decoded
// with Decode:
//
//	buf := make([]byte, inotify.BufferSize)
//	n, err := h.Read(buf)
//	if err != nil {
//	  return err
//	}
//	s := inotify.Decode(buf[:n])
//	for s.Scan() {
//	  ev := s.Event()
//	  ...
//	}
//	if err := s.Err(); err != nil {
//	  return err
//	}
//
// Decoding is pure and works on every platform, which makes it usable for
// inspecting captured event buffers. Opening a Handle is supported on Linux
// only.
package inotify
