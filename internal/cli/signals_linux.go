// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

//go:build linux

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/JekaMas/kfd"
	"github.com/JekaMas/kfd/signalfd"
	"golang.org/x/sys/unix"
)

// pollInterval is how often, in milliseconds, the receiving thread checks
// for cancellation.
const pollInterval = 250

func runSignals(ctx context.Context, out io.Writer, log *slog.Logger, set signalfd.Set, raise bool) error {
	// SIGKILL and SIGSTOP can be neither blocked nor read.
	set.Del(unix.SIGKILL, unix.SIGSTOP)
	if set.Len() == 0 {
		return errors.New("no signals left to receive")
	}
	errc := make(chan error, 1)
	go func() { errc <- receive(ctx, out, log, set, raise) }()
	return <-errc
}

// receive runs on its own locked thread. Thread-directed signals are only
// visible to poll and read done by that thread.
func receive(ctx context.Context, out io.Writer, log *slog.Logger, set signalfd.Set, raise bool) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := signalfd.Block(set); err != nil {
		return err
	}
	defer signalfd.Unblock(set)

	h, err := signalfd.Open(set, kfd.CloseOnExec)
	if err != nil {
		return err
	}
	defer h.Close()

	pid, tid := unix.Getpid(), unix.Gettid()
	log.Info("receiving signals", "pid", pid, "tid", tid, "set", set.String())
	if raise {
		for _, sig := range set.Signals() {
			if err := unix.Tgkill(pid, tid, sig); err != nil {
				return kfd.NewError("tgkill", err)
			}
		}
	}

	fds := []unix.PollFd{{Fd: int32(h.Fd()), Events: unix.POLLIN}}
	for received := 0; !raise || received < set.Len(); {
		if ctx.Err() != nil {
			return nil
		}
		n, err := unix.Poll(fds, pollInterval)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return kfd.NewError("poll", err)
		}
		if n == 0 {
			continue
		}
		infos, err := h.ReadInfo()
		if err != nil {
			return err
		}
		for _, info := range infos {
			fmt.Fprintln(out, info)
			log.Debug("signal", "signo", info.Signo, "code", info.Code, "pid", info.PID)
			received++
		}
	}
	return nil
}
