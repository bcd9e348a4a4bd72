// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

//go:build linux

package inotify

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"

	"github.com/JekaMas/kfd"
	"golang.org/x/sys/unix"
)

// Handle is an open inotify instance.
type Handle struct {
	fd     int
	flags  kfd.Flags
	f      *os.File     // set for non-blocking handles, reads go through the poller
	fdmu   sync.RWMutex // held for writing while fd is being closed
	closed atomic.Bool
	once   sync.Once
	cerr   error

	mu  sync.Mutex // guards buf
	buf []byte
}

// Open creates new inotify instance with inotify_init1(2).
func Open(flags kfd.Flags) (*Handle, error) {
	if !flags.Valid() {
		return nil, kfd.NewError("inotify_init1", unix.EINVAL)
	}
	fd, err := unix.InotifyInit1(sysflags(flags))
	if err != nil {
		return nil, kfd.NewError("inotify_init1", err)
	}
	h := &Handle{fd: fd, flags: flags}
	if flags&kfd.NonBlock != 0 {
		h.f = os.NewFile(uintptr(fd), "inotify")
	}
	return h, nil
}

func sysflags(flags kfd.Flags) (n int) {
	if flags&kfd.NonBlock != 0 {
		n |= unix.IN_NONBLOCK
	}
	if flags&kfd.CloseOnExec != 0 {
		n |= unix.IN_CLOEXEC
	}
	return
}

// Fd gives the underlying file descriptor. It stays owned by h.
func (h *Handle) Fd() int { return h.fd }

// Flags gives the flags h was opened with.
func (h *Handle) Flags() kfd.Flags { return h.flags }

// AddWatch adds a watch for path or, if one exists, replaces its mask.
// Pass InMaskAdd to extend an existing mask instead.
func (h *Handle) AddWatch(path string, mask Mask) (WD, error) {
	h.fdmu.RLock()
	defer h.fdmu.RUnlock()
	if h.closed.Load() {
		return -1, kfd.NewError("inotify_add_watch", unix.EBADF)
	}
	wd, err := unix.InotifyAddWatch(h.fd, path, uint32(mask))
	if err != nil {
		return -1, kfd.NewError("inotify_add_watch", err)
	}
	return WD(wd), nil
}

// RemoveWatch removes the watch wd. The kernel queues an InIgnored event for
// it. Removing a descriptor that is not valid for h fails with EINVAL.
func (h *Handle) RemoveWatch(wd WD) error {
	h.fdmu.RLock()
	defer h.fdmu.RUnlock()
	if h.closed.Load() {
		return kfd.NewError("inotify_rm_watch", unix.EBADF)
	}
	// The kernel takes wd as a signed int; x/sys declares it uint32.
	if _, err := unix.InotifyRmWatch(h.fd, uint32(wd)); err != nil {
		return kfd.NewError("inotify_rm_watch", err)
	}
	return nil
}

// Read reads raw events into p. The buffer must be able to hold at least
// one event with the longest name, BufferSize is a safe choice.
//
// Read blocks until events are available. For non-blocking handles a
// pending Read returns an error once h is closed. Handles opened without
// NonBlock must not be closed while a Read is in progress.
func (h *Handle) Read(p []byte) (int, error) {
	if h.f != nil {
		n, err := h.f.Read(p)
		if err != nil {
			return n, kfd.NewError("read", err)
		}
		return n, nil
	}
	if h.closed.Load() {
		return 0, kfd.NewError("read", unix.EBADF)
	}
	for {
		n, err := unix.Read(h.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, kfd.NewError("read", err)
		}
		return n, nil
	}
}

// ReadEvents reads and decodes one batch of events.
func (h *Handle) ReadEvents() ([]Event, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.buf == nil {
		h.buf = make([]byte, BufferSize)
	}
	n, err := h.Read(h.buf)
	if err != nil {
		return nil, err
	}
	return Events(h.buf[:n])
}

// Close closes the inotify instance. All its watches are removed. Close is
// safe to call more than once, subsequent calls return the first result.
func (h *Handle) Close() error {
	h.once.Do(func() {
		h.fdmu.Lock()
		defer h.fdmu.Unlock()
		h.closed.Store(true)
		var err error
		if h.f != nil {
			err = h.f.Close()
		} else {
			err = unix.Close(h.fd)
		}
		if err != nil && !errors.Is(err, os.ErrClosed) {
			h.cerr = kfd.NewError("close", err)
		}
	})
	return h.cerr
}
