// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package inotify

import (
	"fmt"
	"strconv"
	"strings"
)

// Mask is a set of inotify event and flag bits.
//
// The values are fixed by the kernel ABI (include/uapi/linux/inotify.h) and
// are spelled out here so decoding does not depend on the build platform.
type Mask uint32

// Inotify events.
const (
	InAccess       Mask = 0x00000001 // file was accessed
	InModify       Mask = 0x00000002 // file was modified
	InAttrib       Mask = 0x00000004 // metadata changed
	InCloseWrite   Mask = 0x00000008 // writable file was closed
	InCloseNowrite Mask = 0x00000010 // unwritable file was closed
	InOpen         Mask = 0x00000020 // file was opened
	InMovedFrom    Mask = 0x00000040 // file was moved from X
	InMovedTo      Mask = 0x00000080 // file was moved to Y
	InCreate       Mask = 0x00000100 // subfile was created
	InDelete       Mask = 0x00000200 // subfile was deleted
	InDeleteSelf   Mask = 0x00000400 // self was deleted
	InMoveSelf     Mask = 0x00000800 // self was moved

	InClose     = InCloseWrite | InCloseNowrite
	InMove      = InMovedFrom | InMovedTo
	InAllEvents = Mask(0x00000fff)
)

// Control bits, set by the kernel on read events.
const (
	InUnmount   Mask = 0x00002000 // backing fs was unmounted
	InQOverflow Mask = 0x00004000 // event queue overflowed
	InIgnored   Mask = 0x00008000 // watch was removed
	InIsDir     Mask = 0x40000000 // event occurred against a directory
)

// Flags accepted by AddWatch.
const (
	InOnlyDir    Mask = 0x01000000 // only watch the path if it is a directory
	InDontFollow Mask = 0x02000000 // don't follow a symlink
	InExclUnlink Mask = 0x04000000 // exclude events on unlinked objects
	InMaskCreate Mask = 0x10000000 // only create watches
	InMaskAdd    Mask = 0x20000000 // add to the mask of an existing watch
	InOneshot    Mask = 0x80000000 // only send event once
)

type maskName struct {
	m Mask
	s string
}

// Single bits only, in the order they are printed.
var masknames = []maskName{
	{InAccess, "InAccess"},
	{InModify, "InModify"},
	{InAttrib, "InAttrib"},
	{InCloseWrite, "InCloseWrite"},
	{InCloseNowrite, "InCloseNowrite"},
	{InOpen, "InOpen"},
	{InMovedFrom, "InMovedFrom"},
	{InMovedTo, "InMovedTo"},
	{InCreate, "InCreate"},
	{InDelete, "InDelete"},
	{InDeleteSelf, "InDeleteSelf"},
	{InMoveSelf, "InMoveSelf"},
	{InUnmount, "InUnmount"},
	{InQOverflow, "InQOverflow"},
	{InIgnored, "InIgnored"},
	{InOnlyDir, "InOnlyDir"},
	{InDontFollow, "InDontFollow"},
	{InExclUnlink, "InExclUnlink"},
	{InMaskCreate, "InMaskCreate"},
	{InMaskAdd, "InMaskAdd"},
	{InIsDir, "InIsDir"},
	{InOneshot, "InOneshot"},
}

// Lookup table for ParseMask, keyed by lowercased names without underscores.
var maskvalues = func() map[string]Mask {
	m := map[string]Mask{
		"inclose":     InClose,
		"inmove":      InMove,
		"inallevents": InAllEvents,
		"inall":       InAllEvents,
	}
	for _, n := range masknames {
		m[strings.ToLower(n.s)] = n.m
	}
	return m
}()

// String implements fmt.Stringer interface.
func (m Mask) String() string {
	if m == 0 {
		return "0"
	}
	var s []string
	for _, n := range masknames {
		if m&n.m != 0 {
			s = append(s, "inotify."+n.s)
			m &^= n.m
		}
	}
	if m != 0 {
		s = append(s, fmt.Sprintf("%#x", uint32(m)))
	}
	return strings.Join(s, "|")
}

// ParseMask parses a list of mask names separated by '|' or ','.
//
// A name may be given in any of the forms "InCloseWrite", "IN_CLOSE_WRITE",
// "close_write" or "inotify.InCloseWrite", case-insensitive. Numbers are
// accepted as well, e.g. "0x100".
func ParseMask(s string) (Mask, error) {
	var m Mask
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if n, err := strconv.ParseUint(f, 0, 32); err == nil {
			m |= Mask(n)
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(f, "inotify."))
		key = strings.ReplaceAll(key, "_", "")
		v, ok := maskvalues[key]
		if !ok {
			v, ok = maskvalues["in"+key]
		}
		if !ok {
			return 0, fmt.Errorf("inotify: unknown mask name %q", f)
		}
		m |= v
	}
	return m, nil
}
