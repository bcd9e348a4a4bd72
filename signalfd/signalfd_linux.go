// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

//go:build linux

package signalfd

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/JekaMas/kfd"
	"golang.org/x/sys/unix"
)

// Handle is an open signalfd.
type Handle struct {
	fd     int
	flags  kfd.Flags
	f      *os.File     // set for non-blocking handles, reads go through the poller
	fdmu   sync.RWMutex // held for writing while fd is being closed
	closed atomic.Bool
	once   sync.Once
	cerr   error

	mu  sync.Mutex // guards set
	set Set
}

// Open creates new signalfd accepting the signals in set. An empty set is
// valid and gives a descriptor that never becomes readable.
//
// Open does not block the signals; see Block.
func Open(set Set, flags kfd.Flags) (*Handle, error) {
	if !flags.Valid() {
		return nil, kfd.NewError("signalfd", unix.EINVAL)
	}
	ss := sigset(set)
	fd, err := unix.Signalfd(-1, &ss, sysflags(flags))
	if err != nil {
		return nil, kfd.NewError("signalfd", err)
	}
	h := &Handle{fd: fd, flags: flags, set: set}
	if flags&kfd.NonBlock != 0 {
		h.f = os.NewFile(uintptr(fd), "signalfd")
	}
	return h, nil
}

func sysflags(flags kfd.Flags) (n int) {
	if flags&kfd.NonBlock != 0 {
		n |= unix.SFD_NONBLOCK
	}
	if flags&kfd.CloseOnExec != 0 {
		n |= unix.SFD_CLOEXEC
	}
	return
}

func sigset(s Set) (ss unix.Sigset_t) {
	w := uint(unsafe.Sizeof(ss.Val[0]) * 8)
	for _, sig := range s.Signals() {
		n := uint(sig - 1)
		if n/w >= uint(len(ss.Val)) {
			continue
		}
		ss.Val[n/w] |= 1 << (n % w)
	}
	return
}

// Fd gives the underlying file descriptor. It stays owned by h.
func (h *Handle) Fd() int { return h.fd }

// Flags gives the flags h was opened with.
func (h *Handle) Flags() kfd.Flags { return h.flags }

// Set gives the signals h currently accepts.
func (h *Handle) Set() Set {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.set
}

// SetMask replaces the set of signals h accepts.
func (h *Handle) SetMask(set Set) error {
	h.fdmu.RLock()
	defer h.fdmu.RUnlock()
	if h.closed.Load() {
		return kfd.NewError("signalfd", unix.EBADF)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	ss := sigset(set)
	if _, err := unix.Signalfd(h.fd, &ss, 0); err != nil {
		return kfd.NewError("signalfd", err)
	}
	h.set = set
	return nil
}

// Read reads raw records into p, which must hold at least RecordSize bytes.
//
// Read blocks until a signal is pending. For non-blocking handles a pending
// Read returns an error once h is closed. Handles opened without NonBlock
// must not be closed while a Read is in progress.
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

// ReadInfo reads and decodes up to 16 pending signals.
func (h *Handle) ReadInfo() ([]Info, error) {
	buf := make([]byte, 16*RecordSize)
	n, err := h.Read(buf)
	if err != nil {
		return nil, err
	}
	return DecodeAll(buf[:n])
}

// Close closes the signalfd. It does not unblock any signal. Close is safe to
// call more than once, subsequent calls return the first result.
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

// Block adds set to the signal mask of the calling thread. Pin the calling
// goroutine with runtime.LockOSThread first, or the mask ends up on whatever
// thread the goroutine happens to run on.
func Block(set Set) error {
	ss := sigset(set)
	if err := unix.PthreadSigmask(unix.SIG_BLOCK, &ss, nil); err != nil {
		return kfd.NewError("pthread_sigmask", err)
	}
	return nil
}

// Unblock removes set from the signal mask of the calling thread.
func Unblock(set Set) error {
	ss := sigset(set)
	if err := unix.PthreadSigmask(unix.SIG_UNBLOCK, &ss, nil); err != nil {
		return kfd.NewError("pthread_sigmask", err)
	}
	return nil
}

// Blocked gives the signal mask of the calling thread.
func Blocked() (Set, error) {
	var ss unix.Sigset_t
	if err := unix.PthreadSigmask(unix.SIG_BLOCK, nil, &ss); err != nil {
		return Set{}, kfd.NewError("pthread_sigmask", err)
	}
	var s Set
	w := uint(unsafe.Sizeof(ss.Val[0]) * 8)
	for i := range ss.Val {
		for j := uint(0); j < w; j++ {
			if uint64(ss.Val[i])&(1<<j) != 0 {
				s.Add(unix.Signal(uint(i)*w + j + 1))
			}
		}
	}
	return s, nil
}
