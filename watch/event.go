// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package watch

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Event represents the type of filesystem action.
//
// Create, Remove, Write and Rename are present on all platforms. Platform
// specific values are defined in the event_*.go files.
type Event uint32

// Platform-independent events, kept above the bits used by inotify.
const (
	Create Event = 0x100000 << iota
	Remove
	Write
	Rename

	// All is handful alias for all platform-independent event values.
	All = Create | Remove | Write | Rename
)

// ErrOverflow is sent on the error channel when the kernel dropped events.
var ErrOverflow = errors.New("watch: event queue overflowed")

var estr = map[Event]string{
	Create: "watch.Create",
	Remove: "watch.Remove",
	Write:  "watch.Write",
	Rename: "watch.Rename",
}

// String implements fmt.Stringer interface.
func (e Event) String() string {
	var evs []Event
	for _, strmap := range []map[Event]string{estr, osestr} {
		for ev := range strmap {
			if e&ev == ev {
				evs = append(evs, ev)
			}
		}
	}
	sort.Slice(evs, func(i, j int) bool { return evs[i] < evs[j] })
	s := make([]string, 0, len(evs))
	for _, ev := range evs {
		if str, ok := estr[ev]; ok {
			s = append(s, str)
		} else {
			s = append(s, osestr[ev])
		}
	}
	return strings.Join(s, "|")
}

// EventInfo describes an event reported by the underlying filesystem
// notification subsystem.
//
// The reported path is the watched path, joined with the name of the
// affected entry for events within a watched directory.
//
// The value of Sys is system-dependent. It is an inotify.Event on Linux and
// an fsnotify.Event when the fsnotify implementation is in use.
type EventInfo interface {
	Event() Event     // event value for the filesystem action
	Path() string     // path of the file or directory
	Sys() interface{} // underlying data source
}

type event struct {
	e    Event
	path string
	sys  interface{}
}

func (e *event) Event() Event     { return e.e }
func (e *event) Path() string     { return e.path }
func (e *event) Sys() interface{} { return e.sys }

// String implements fmt.Stringer interface.
func (e *event) String() string {
	return e.Event().String() + `: "` + e.Path() + `"`
}

// joinevents gives the union of events, or All if none were given.
func joinevents(events []Event) (e Event) {
	if len(events) == 0 {
		return All
	}
	for _, event := range events {
		e |= event
	}
	return
}

// ParseEvent parses a list of event names separated by '|' or ','.
//
// Names are case-insensitive and may carry the "watch." prefix, e.g.
// "create", "watch.Remove" or, on Linux, "in_close_write". "all" stands for
// All.
func ParseEvent(s string) (Event, error) {
	var e Event
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(f, "watch.")), "_", "")
		ev, ok := evalues[key]
		if !ok {
			return 0, errors.New("watch: unknown event " + strconv.Quote(f))
		}
		e |= ev
	}
	return e, nil
}

var evalues = func() map[string]Event {
	m := map[string]Event{"all": All}
	for _, strmap := range []map[Event]string{estr, osestr} {
		for ev, s := range strmap {
			m[strings.ToLower(strings.TrimPrefix(s, "watch."))] = ev
		}
	}
	return m
}()
