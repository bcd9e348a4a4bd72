// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

// Package watch implements a non-recursive filesystem watcher on top of the
// inotify package on Linux and on top of fsnotify elsewhere.
//
// The watcher translates raw notifications into Create, Remove, Write and
// Rename events, which are available on all platforms. On Linux the inotify
// events (InCloseWrite, InMovedTo, ...) can be requested as well; they are
// reported as-is.
//
// Building with the fsnotify tag selects the fsnotify implementation on Linux
// too.
package watch
