// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

//go:build linux && !fsnotify

package watch

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/JekaMas/kfd"
	"github.com/JekaMas/kfd/inotify"
	"golang.org/x/sys/unix"
)

type watched struct {
	path string
	mask Event
}

// inotifyWatcher implements Watcher with a single inotify instance read by
// one goroutine.
type inotifyWatcher struct {
	sync.RWMutex
	m     map[inotify.WD]*watched // watch descriptor to watch-point
	paths map[string]inotify.WD   // path to watch descriptor

	h    *inotify.Handle
	c    chan EventInfo
	errs chan error
	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
	log  *slog.Logger
}

func newWatcher(o options) (Watcher, error) {
	h, err := inotify.Open(kfd.NonBlock | kfd.CloseOnExec)
	if err != nil {
		return nil, err
	}
	w := &inotifyWatcher{
		m:     make(map[inotify.WD]*watched),
		paths: make(map[string]inotify.WD),
		h:     h,
		c:     make(chan EventInfo, o.buffer),
		errs:  make(chan error, 16),
		stop:  make(chan struct{}),
		log:   o.log.With("component", "watch", "impl", "inotify"),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch implements Watcher interface.
func (w *inotifyWatcher) Watch(path string, events ...Event) error {
	path, err := abs(path)
	if err != nil {
		return err
	}
	e := joinevents(events)
	wd, err := w.h.AddWatch(path, encode(e))
	if err != nil {
		return err
	}
	w.Lock()
	defer w.Unlock()
	if old, ok := w.paths[path]; ok && old != wd {
		// The path points to another inode now; the old watch is gone
		// or going to be reported with InIgnored.
		delete(w.m, old)
	}
	if wp, ok := w.m[wd]; ok && wp.path != path {
		// Same inode watched under another name, e.g. through a symlink.
		delete(w.paths, wp.path)
	}
	w.m[wd] = &watched{path: path, mask: e}
	w.paths[path] = wd
	w.log.Debug("watch", "path", path, "wd", wd, "events", e.String())
	return nil
}

// Unwatch implements Watcher interface.
func (w *inotifyWatcher) Unwatch(path string) error {
	path, err := abs(path)
	if err != nil {
		return err
	}
	w.Lock()
	wd, ok := w.paths[path]
	if ok {
		delete(w.paths, path)
		delete(w.m, wd)
	}
	w.Unlock()
	if !ok {
		return errors.New("watch: path " + path + " is unwatched")
	}
	w.log.Debug("unwatch", "path", path, "wd", wd)
	if err := w.h.RemoveWatch(wd); err != nil && !errors.Is(err, unix.EINVAL) {
		return err
	}
	return nil
}

// Events implements Watcher interface.
func (w *inotifyWatcher) Events() <-chan EventInfo { return w.c }

// Errors implements Watcher interface.
func (w *inotifyWatcher) Errors() <-chan error { return w.errs }

// Close implements Watcher interface.
func (w *inotifyWatcher) Close() (err error) {
	w.once.Do(func() {
		close(w.stop)
		err = w.h.Close()
		w.wg.Wait()
		close(w.c)
		close(w.errs)
	})
	return
}

func (w *inotifyWatcher) loop() {
	defer w.wg.Done()
	for {
		events, err := w.h.ReadEvents()
		w.send(events)
		if err == nil {
			continue
		}
		select {
		case <-w.stop:
			return
		default:
		}
		var derr *inotify.DecodeError
		if errors.As(err, &derr) {
			w.senderr(err)
			continue
		}
		w.log.Error("read failed, stopping", "err", err)
		w.senderr(err)
		return
	}
}

func (w *inotifyWatcher) send(events []inotify.Event) {
	for _, ev := range events {
		if ev.Mask&inotify.InQOverflow != 0 {
			w.senderr(ErrOverflow)
			continue
		}
		w.RLock()
		wp, ok := w.m[ev.WD]
		w.RUnlock()
		if !ok {
			continue
		}
		if ev.Mask&inotify.InIgnored != 0 {
			w.Lock()
			if w.m[ev.WD] == wp {
				delete(w.m, ev.WD)
				delete(w.paths, wp.path)
			}
			w.Unlock()
			w.log.Debug("watch removed by kernel", "path", wp.path, "wd", ev.WD)
			continue
		}
		e := decodemask(uint32(wp.mask), uint32(ev.Mask))
		if e == 0 {
			continue
		}
		name := wp.path
		if ev.Name != "" {
			name = filepath.Join(wp.path, ev.Name)
		}
		select {
		case w.c <- &event{e: e, path: name, sys: ev}:
		case <-w.stop:
			return
		}
	}
}

func (w *inotifyWatcher) senderr(err error) {
	select {
	case w.errs <- err:
	default:
		w.log.Warn("error dropped", "err", err)
	}
}
