// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

//go:build !linux || fsnotify

package watch

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// fsnotifyWatcher implements Watcher by wrapping the fsnotify package.
type fsnotifyWatcher struct {
	sync.RWMutex
	m map[string]Event // watched path to its event set

	w    *fsnotify.Watcher
	c    chan EventInfo
	errs chan error
	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
	log  *slog.Logger
}

func newWatcher(o options) (Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &fsnotifyWatcher{
		m:    make(map[string]Event),
		w:    fw,
		c:    make(chan EventInfo, o.buffer),
		errs: make(chan error, 16),
		stop: make(chan struct{}),
		log:  o.log.With("component", "watch", "impl", "fsnotify"),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch implements Watcher interface.
func (w *fsnotifyWatcher) Watch(path string, events ...Event) error {
	path, err := abs(path)
	if err != nil {
		return err
	}
	e := joinevents(events) & All
	if e == 0 {
		return errors.New("watch: no supported events requested for " + path)
	}
	if err := w.w.Add(path); err != nil {
		return err
	}
	w.Lock()
	w.m[path] = e
	w.Unlock()
	w.log.Debug("watch", "path", path, "events", e.String())
	return nil
}

// Unwatch implements Watcher interface.
func (w *fsnotifyWatcher) Unwatch(path string) error {
	path, err := abs(path)
	if err != nil {
		return err
	}
	w.Lock()
	_, ok := w.m[path]
	delete(w.m, path)
	w.Unlock()
	if !ok {
		return errors.New("watch: path " + path + " is unwatched")
	}
	w.log.Debug("unwatch", "path", path)
	if err := w.w.Remove(path); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
		return err
	}
	return nil
}

// Events implements Watcher interface.
func (w *fsnotifyWatcher) Events() <-chan EventInfo { return w.c }

// Errors implements Watcher interface.
func (w *fsnotifyWatcher) Errors() <-chan error { return w.errs }

// Close implements Watcher interface.
func (w *fsnotifyWatcher) Close() (err error) {
	w.once.Do(func() {
		close(w.stop)
		err = w.w.Close()
		w.wg.Wait()
		close(w.c)
		close(w.errs)
	})
	return
}

func (w *fsnotifyWatcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			w.send(ev)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				err = ErrOverflow
			}
			w.senderr(err)
		case <-w.stop:
			return
		}
	}
}

// mask gives the event set registered for the path or its parent directory.
func (w *fsnotifyWatcher) mask(path string) Event {
	w.RLock()
	defer w.RUnlock()
	if e, ok := w.m[path]; ok {
		return e
	}
	return w.m[filepath.Dir(path)]
}

func (w *fsnotifyWatcher) send(ev fsnotify.Event) {
	var e Event
	switch {
	case ev.Has(fsnotify.Create):
		e = Create
	case ev.Has(fsnotify.Remove):
		e = Remove
	case ev.Has(fsnotify.Write):
		e = Write
	case ev.Has(fsnotify.Rename):
		e = Rename
	}
	if e &= w.mask(ev.Name); e == 0 {
		return
	}
	select {
	case w.c <- &event{e: e, path: ev.Name, sys: ev}:
	case <-w.stop:
	}
}

func (w *fsnotifyWatcher) senderr(err error) {
	select {
	case w.errs <- err:
	default:
		w.log.Warn("error dropped", "err", err)
	}
}
