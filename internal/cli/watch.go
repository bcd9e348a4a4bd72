// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/JekaMas/kfd"
	"github.com/JekaMas/kfd/inotify"
	"github.com/JekaMas/kfd/internal/config"
	"github.com/JekaMas/kfd/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(o *rootOptions) *cobra.Command {
	var (
		events string
		raw    bool
	)
	cmd := &cobra.Command{
		Use:   "watch [path...]",
		Short: "Print filesystem events for the given paths",
		Long: `Print filesystem events for the given paths until interrupted.

Paths from the config file are watched as well. With --raw every inotify
record is printed as read from the kernel (Linux only).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := o.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			paths := append([]config.WatchPath{}, cfg.Watch.Paths...)
			for _, arg := range args {
				wp := config.WatchPath{Path: arg}
				if events != "" {
					wp.Events = []string{events}
				}
				paths = append(paths, wp)
			}
			if len(paths) == 0 {
				return errors.New("no paths to watch")
			}
			if raw || cfg.Watch.Raw {
				return runRawWatch(cmd.Context(), cmd.OutOrStdout(), log, paths)
			}
			return runWatch(cmd.Context(), cmd.OutOrStdout(), log, cfg.Watch.Buffer, paths)
		},
	}
	cmd.Flags().StringVar(&events, "events", "", "Events for paths given as arguments, e.g. create|write (default all)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw inotify records")
	return cmd
}

func runWatch(ctx context.Context, out io.Writer, log *slog.Logger, buffer int, paths []config.WatchPath) error {
	w, err := watch.New(watch.WithLogger(log), watch.WithBuffer(buffer))
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	for _, p := range paths {
		e, err := watch.ParseEvent(strings.Join(p.Events, "|"))
		if err != nil {
			return err
		}
		var events []watch.Event
		if e != 0 {
			events = append(events, e)
		}
		if err := w.Watch(p.Path, events...); err != nil {
			return fmt.Errorf("watch %s: %w", p.Path, err)
		}
		log.Info("watching", "path", p.Path, "events", strings.Join(p.Events, "|"))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ei, ok := <-w.Events():
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "%s\t%s\n", ei.Event(), ei.Path())
		case err, ok := <-w.Errors():
			if ok {
				log.Warn("watch error", "err", err)
			}
		}
	}
}

func runRawWatch(ctx context.Context, out io.Writer, log *slog.Logger, paths []config.WatchPath) error {
	h, err := inotify.Open(kfd.NonBlock | kfd.CloseOnExec)
	if err != nil {
		return err
	}
	defer h.Close()

	for _, p := range paths {
		m, err := inotify.ParseMask(strings.Join(p.Events, "|"))
		if err != nil {
			return err
		}
		if m == 0 {
			m = inotify.InAllEvents
		}
		wd, err := h.AddWatch(p.Path, m)
		if err != nil {
			return fmt.Errorf("watch %s: %w", p.Path, err)
		}
		log.Info("watching", "path", p.Path, "wd", int32(wd), "mask", m.String())
	}

	// Closing the handle unblocks the pending read.
	stop := context.AfterFunc(ctx, func() { h.Close() })
	defer stop()

	buf := make([]byte, inotify.BufferSize)
	for {
		n, err := h.Read(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		s := inotify.Decode(buf[:n])
		for s.Scan() {
			printEvent(out, s.Event())
		}
		if err := s.Err(); err != nil {
			log.Warn("decode failed", "err", err)
		}
	}
}

func printEvent(out io.Writer, ev inotify.Event) {
	fmt.Fprintf(out, "wd=%d mask=%s cookie=%d len=%d name=%q\n", ev.WD, ev.Mask, ev.Cookie, ev.Len, ev.Name)
}
