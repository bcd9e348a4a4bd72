// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

//go:build linux

package watch

import "github.com/JekaMas/kfd/inotify"

// Inotify events.
const (
	InAccess       = Event(inotify.InAccess)
	InModify       = Event(inotify.InModify)
	InAttrib       = Event(inotify.InAttrib)
	InCloseWrite   = Event(inotify.InCloseWrite)
	InCloseNowrite = Event(inotify.InCloseNowrite)
	InOpen         = Event(inotify.InOpen)
	InMovedFrom    = Event(inotify.InMovedFrom)
	InMovedTo      = Event(inotify.InMovedTo)
	InCreate       = Event(inotify.InCreate)
	InDelete       = Event(inotify.InDelete)
	InDeleteSelf   = Event(inotify.InDeleteSelf)
	InMoveSelf     = Event(inotify.InMoveSelf)

	InClose     = InCloseWrite | InCloseNowrite
	InMove      = InMovedFrom | InMovedTo
	InAllEvents = Event(inotify.InAllEvents)
)

var osestr = map[Event]string{
	InAccess:       "watch.InAccess",
	InModify:       "watch.InModify",
	InAttrib:       "watch.InAttrib",
	InCloseWrite:   "watch.InCloseWrite",
	InCloseNowrite: "watch.InCloseNowrite",
	InOpen:         "watch.InOpen",
	InMovedFrom:    "watch.InMovedFrom",
	InMovedTo:      "watch.InMovedTo",
	InCreate:       "watch.InCreate",
	InDelete:       "watch.InDelete",
	InDeleteSelf:   "watch.InDeleteSelf",
	InMoveSelf:     "watch.InMoveSelf",
}

// ekind maps inotify events onto the platform-independent ones.
var ekind = map[Event]Event{
	InCreate:     Create,
	InMovedTo:    Create,
	InDelete:     Remove,
	InDeleteSelf: Remove,
	InModify:     Write,
	InMovedFrom:  Rename,
	InMoveSelf:   Rename,
}

// encode gives the inotify mask needed to observe the events in e.
func encode(e Event) inotify.Mask {
	m := inotify.Mask(e & InAllEvents)
	if e&Create != 0 {
		m |= inotify.InCreate | inotify.InMovedTo
	}
	if e&Remove != 0 {
		m |= inotify.InDelete | inotify.InDeleteSelf
	}
	if e&Write != 0 {
		m |= inotify.InModify
	}
	if e&Rename != 0 {
		m |= inotify.InMovedFrom | inotify.InMoveSelf
	}
	return m
}

// decodemask gives the event to report for the got mask read from the
// kernel, for a watch-point registered with the passed events. Events
// requested explicitly are reported as-is, other ones are translated into
// their platform-independent kind. It returns 0 when the event was not
// requested at all.
func decodemask(passed, got uint32) Event {
	e := Event(got) & InAllEvents
	if Event(passed)&e != 0 {
		return e
	}
	if kind := ekind[e]; Event(passed)&kind != 0 {
		return kind
	}
	return 0
}
