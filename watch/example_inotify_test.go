// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

//go:build linux && !fsnotify

package watch_test

import (
	"log"

	"github.com/JekaMas/kfd/inotify"
	"github.com/JekaMas/kfd/watch"
)

func ExampleWatcher_system_specific_events() {
	w, err := watch.New(watch.WithBuffer(1))
	if err != nil {
		log.Fatal(err)
	}
	defer w.Close()

	// Set up a watchpoint listening on inotify system-specific events within a
	// current working directory.
	if err := w.Watch(".", watch.InCloseWrite, watch.InMovedTo); err != nil {
		log.Fatal(err)
	}

	// Block until an event is received.
	switch ei := <-w.Events(); ei.Event() {
	case watch.InCloseWrite:
		log.Println("Editing of", ei.Path(), "file is done.")
	case watch.InMovedTo:
		log.Println("File", ei.Path(), "was swapped/moved into the watched directory.")
	}
}

func ExampleWatcher_move_file_on_linux() {
	w, err := watch.New()
	if err != nil {
		log.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(".", watch.InMovedFrom, watch.InMovedTo); err != nil {
		log.Fatal(err)
	}

	// We create a simple map which connects two events that have equal cookie values.
	moves := make(map[uint32]struct {
		From string
		To   string
	})

	// Wait for moves.
	for ei := range w.Events() {
		cookie := ei.Sys().(inotify.Event).Cookie

		info := moves[cookie]
		switch ei.Event() {
		case watch.InMovedFrom:
			info.From = ei.Path()
		case watch.InMovedTo:
			info.To = ei.Path()
		}
		moves[cookie] = info

		if cookie != 0 && info.From != "" && info.To != "" {
			log.Println("File:", info.From, "was renamed to", info.To)
			delete(moves, cookie)
		}
	}
}
