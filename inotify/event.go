// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package inotify

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"iter"
)

// SizeofEvent is the size of the fixed struct inotify_event header. The
// variable-length name follows it.
const SizeofEvent = 16

// NameMax is the longest file name the kernel will report.
const NameMax = 255

// BufferSize is large enough to hold 64 events with names of maximum length.
// A read with a buffer smaller than a single event fails with EINVAL.
const BufferSize = 64 * (SizeofEvent + NameMax + 1)

// WD is a watch descriptor, as returned by inotify_add_watch(2).
type WD int32

// Event is a decoded struct inotify_event.
type Event struct {
	WD     WD     // watch descriptor the event belongs to
	Mask   Mask   // kind of the event plus control bits
	Cookie uint32 // correlates InMovedFrom with InMovedTo
	Len    uint32 // length of the trailing name, including NUL padding
	Name   string // name relative to the watched directory, padding trimmed
}

// IsDir reports whether the subject of the event was a directory.
func (e Event) IsDir() bool { return e.Mask&InIsDir != 0 }

// String implements fmt.Stringer interface.
func (e Event) String() string {
	return fmt.Sprintf("%s: wd=%d cookie=%d %q", e.Mask, e.WD, e.Cookie, e.Name)
}

// DecodeError is returned when a record does not fit into the buffer.
type DecodeError struct {
	Offset int // offset of the broken record
	Need   int // bytes the record needs from Offset
	Have   int // bytes left from Offset
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("inotify: truncated event at offset %d: need %d bytes, have %d",
		e.Offset, e.Need, e.Have)
}

// Unwrap gives io.ErrUnexpectedEOF.
func (e *DecodeError) Unwrap() error { return io.ErrUnexpectedEOF }

// Scanner walks a buffer of raw inotify events. It does not copy the buffer
// and must not outlive the next read into it. A Scanner cannot be rewound.
type Scanner struct {
	buf []byte
	off int
	ev  Event
	err error
}

// Decode gives a Scanner over buf. The length of buf must be the number of
// bytes returned by the read, not the capacity of the read buffer.
func Decode(buf []byte) *Scanner {
	return &Scanner{buf: buf}
}

// Scan advances to the next event. It returns false when the buffer is
// exhausted or a record does not fit into the rest of it.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.off >= len(s.buf) {
		return false
	}
	rest := s.buf[s.off:]
	if len(rest) < SizeofEvent {
		s.err = &DecodeError{Offset: s.off, Need: SizeofEvent, Have: len(rest)}
		return false
	}
	n := binary.NativeEndian.Uint32(rest[12:16])
	if uint64(n) > uint64(len(rest)-SizeofEvent) {
		s.err = &DecodeError{Offset: s.off, Need: SizeofEvent + int(n), Have: len(rest)}
		return false
	}
	s.ev = Event{
		WD:     WD(int32(binary.NativeEndian.Uint32(rest[0:4]))),
		Mask:   Mask(binary.NativeEndian.Uint32(rest[4:8])),
		Cookie: binary.NativeEndian.Uint32(rest[8:12]),
		Len:    n,
	}
	if n > 0 {
		s.ev.Name = string(bytes.TrimRight(rest[SizeofEvent:SizeofEvent+int(n)], "\x00"))
	}
	s.off += SizeofEvent + int(n)
	return true
}

// Event gives the event decoded by the last call to Scan.
func (s *Scanner) Event() Event { return s.ev }

// Err gives the error which stopped the scan, if any.
func (s *Scanner) Err() error { return s.err }

// Offset gives the offset of the first byte not consumed yet.
func (s *Scanner) Offset() int { return s.off }

// All adapts s into a range-over-func sequence. A decoding error is yielded
// once, as the last element, with a zero Event.
func (s *Scanner) All() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for s.Scan() {
			if !yield(s.ev, nil) {
				return
			}
		}
		if s.err != nil {
			yield(Event{}, s.err)
		}
	}
}

// Events decodes all the events in buf. On error it returns the events
// decoded before the broken record.
func Events(buf []byte) ([]Event, error) {
	var events []Event
	s := Decode(buf)
	for s.Scan() {
		events = append(events, s.Event())
	}
	return events, s.Err()
}

// Encode writes events in the layout the kernel uses.
//
// When Len is zero and Name is not empty, the name is NUL-padded to a multiple
// of SizeofEvent, as the kernel does. Otherwise Len bytes are written after
// the header and Name is cut to fit them.
func Encode(events ...Event) []byte {
	var buf []byte
	for _, ev := range events {
		n := ev.Len
		if n == 0 && ev.Name != "" {
			n = uint32((len(ev.Name) + SizeofEvent) / SizeofEvent * SizeofEvent)
		}
		var hdr [SizeofEvent]byte
		binary.NativeEndian.PutUint32(hdr[0:4], uint32(ev.WD))
		binary.NativeEndian.PutUint32(hdr[4:8], uint32(ev.Mask))
		binary.NativeEndian.PutUint32(hdr[8:12], ev.Cookie)
		binary.NativeEndian.PutUint32(hdr[12:16], n)
		buf = append(buf, hdr[:]...)
		name := make([]byte, n)
		copy(name, ev.Name)
		buf = append(buf, name...)
	}
	return buf
}
