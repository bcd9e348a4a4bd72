// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package inotify

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTrip(t *testing.T) {
	events := []Event{
		{WD: 1, Mask: InCreate, Cookie: 0, Len: 0},
		{WD: 1, Mask: InMovedFrom, Cookie: 42, Len: 16, Name: "a.txt"},
		{WD: 2, Mask: InMovedTo | InIsDir, Cookie: 42, Len: 32, Name: "some-longer-dir-name"},
		{WD: 3, Mask: InDeleteSelf, Len: 7, Name: "odd"},
		{WD: -1, Mask: InQOverflow},
		{WD: 7, Mask: InIgnored, Cookie: 0xffffffff},
	}
	buf := Encode(events...)
	require.Len(t, buf, 6*SizeofEvent+16+32+7)

	got, err := Events(buf)
	require.NoError(t, err)
	require.Len(t, got, len(events))
	for i := range events {
		assert.Equal(t, events[i], got[i], "i=%d", i)
	}
}

func TestDecodeKernelPadding(t *testing.T) {
	tests := []struct {
		name string
		len  uint32
	}{
		{"x", 16},
		{"fifteen-chars..", 16},
		{"sixteen-chars...", 32},
		{"", 0},
	}
	for i, test := range tests {
		buf := Encode(Event{WD: 1, Mask: InCreate, Name: test.name})
		if want := SizeofEvent + int(test.len); len(buf) != want {
			t.Errorf("want len(buf)=%d; got %d (i=%d)", want, len(buf), i)
			continue
		}
		s := Decode(buf)
		require.True(t, s.Scan(), "i=%d", i)
		if ev := s.Event(); ev.Len != test.len || ev.Name != test.name {
			t.Errorf("want len=%d name=%q; got len=%d name=%q (i=%d)", test.len, test.name,
				ev.Len, ev.Name, i)
		}
		assert.False(t, s.Scan())
		assert.NoError(t, s.Err())
		assert.Equal(t, len(buf), s.Offset())
	}
}

func TestDecodeEmpty(t *testing.T) {
	s := Decode(nil)
	assert.False(t, s.Scan())
	assert.NoError(t, s.Err())

	events, err := Events([]byte{})
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestDecodeTruncated(t *testing.T) {
	buf := Encode(
		Event{WD: 1, Mask: InCreate, Name: "first"},
		Event{WD: 2, Mask: InDelete, Name: "second"},
	)
	tests := []struct {
		n      int // bytes handed to Decode
		events int // whole events before the error
		offset int // offset reported by the error
		need   int
	}{
		{SizeofEvent - 1, 0, 0, SizeofEvent},
		{SizeofEvent + 3, 0, 0, 2 * SizeofEvent},
		{2*SizeofEvent + 5, 1, 2 * SizeofEvent, SizeofEvent},
		{len(buf) - 1, 1, 2 * SizeofEvent, 2 * SizeofEvent},
	}
	for i, test := range tests {
		// Slicing with a full slice expression keeps Decode from seeing the
		// bytes past n even through the capacity.
		events, err := Events(buf[:test.n:test.n])
		var derr *DecodeError
		if !assert.ErrorAs(t, err, &derr, "i=%d", i) {
			continue
		}
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Len(t, events, test.events, "i=%d", i)
		assert.Equal(t, test.offset, derr.Offset, "i=%d", i)
		assert.Equal(t, test.need, derr.Need, "i=%d", i)
		assert.Equal(t, test.n-test.offset, derr.Have, "i=%d", i)
	}
}

func TestDecodeBogusLen(t *testing.T) {
	buf := Encode(Event{WD: 1, Mask: InCreate, Name: "name"})
	binary.NativeEndian.PutUint32(buf[12:16], 0xffffffff)

	s := Decode(buf)
	assert.False(t, s.Scan())
	var derr *DecodeError
	require.ErrorAs(t, s.Err(), &derr)
	assert.Equal(t, 0, s.Offset())
	// Once failed, a scanner stays failed.
	assert.False(t, s.Scan())
}

func TestScannerAll(t *testing.T) {
	buf := Encode(
		Event{WD: 1, Mask: InCreate, Name: "a"},
		Event{WD: 1, Mask: InModify, Name: "a"},
		Event{WD: 1, Mask: InDelete, Name: "a"},
	)

	var masks []Mask
	for ev, err := range Decode(buf).All() {
		require.NoError(t, err)
		masks = append(masks, ev.Mask)
	}
	assert.Equal(t, []Mask{InCreate, InModify, InDelete}, masks)

	s := Decode(buf)
	for range s.All() {
		break
	}
	assert.Equal(t, SizeofEvent*2, s.Offset())

	var errs int
	for _, err := range Decode(buf[:len(buf)-1]).All() {
		if err != nil {
			errs++
		}
	}
	assert.Equal(t, 1, errs)
}

func TestEventIsDir(t *testing.T) {
	assert.True(t, Event{Mask: InCreate | InIsDir}.IsDir())
	assert.False(t, Event{Mask: InCreate}.IsDir())
	assert.Equal(t, `inotify.InCreate|inotify.InIsDir: wd=3 cookie=0 "dir"`,
		Event{WD: 3, Mask: InCreate | InIsDir, Name: "dir"}.String())
}
