// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package signalfd

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sentinel = Info{
	Signo:    10,
	Errno:    -2,
	Code:     -6,
	PID:      0x01020304,
	UID:      0x05060708,
	FD:       -9,
	TID:      0x0a0b0c0d,
	Band:     0x0e0f1011,
	Overrun:  0x12131415,
	Trapno:   0x16171819,
	Status:   -0x1a1b1c1d,
	Int:      0x1e1f2021,
	Ptr:      0x2223242526272829,
	Utime:    0x2a2b2c2d2e2f3031,
	Stime:    0x3233343536373839,
	Addr:     0x3a3b3c3d3e3f4041,
	AddrLSB:  0x4243,
	Syscall:  0x44454647,
	CallAddr: 0x48494a4b4c4d4e4f,
	Arch:     0x50515253,
}

func TestDecodeSentinel(t *testing.T) {
	rec := Encode(sentinel)
	require.Len(t, rec, RecordSize)

	info, err := Decode(rec)
	require.NoError(t, err)
	assert.Equal(t, sentinel, info)
}

// Offsets of struct signalfd_siginfo, see include/uapi/linux/signalfd.h.
func TestDecodeLayout(t *testing.T) {
	rec := make([]byte, RecordSize)
	binary.NativeEndian.PutUint32(rec[0:], 17)
	binary.NativeEndian.PutUint32(rec[12:], 4242)
	binary.NativeEndian.PutUint32(rec[16:], 1000)
	binary.NativeEndian.PutUint32(rec[40:], 3)
	binary.NativeEndian.PutUint64(rec[72:], 0xdeadbeef)
	binary.NativeEndian.PutUint16(rec[80:], 12)
	binary.NativeEndian.PutUint32(rec[96:], 0xc000003e)

	info := MustDecode(rec)
	assert.Equal(t, Info{
		Signo:   17,
		PID:     4242,
		UID:     1000,
		Status:  3,
		Addr:    0xdeadbeef,
		AddrLSB: 12,
		Arch:    0xc000003e,
	}, info)
}

func TestDecodePadding(t *testing.T) {
	rec := Encode(sentinel)
	for i := 100; i < RecordSize; i++ {
		assert.Zero(t, rec[i], "i=%d", i)
	}
	assert.Zero(t, rec[82])
	assert.Zero(t, rec[83])

	// Garbage in the padding does not leak into the decoded value.
	for i := 100; i < RecordSize; i++ {
		rec[i] = 0xff
	}
	assert.Equal(t, sentinel, MustDecode(rec))
}

func TestDecodeShort(t *testing.T) {
	for _, n := range []int{0, 1, RecordSize - 1} {
		_, err := Decode(make([]byte, n))
		var derr *DecodeError
		if assert.ErrorAs(t, err, &derr, "n=%d", n) {
			assert.Equal(t, n, derr.Have)
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		}
	}
	assert.Panics(t, func() { MustDecode(nil) })
}

func TestDecodeAll(t *testing.T) {
	a, b := sentinel, sentinel
	b.Signo = 12
	buf := append(Encode(a), Encode(b)...)

	infos, err := DecodeAll(buf)
	require.NoError(t, err)
	assert.Equal(t, []Info{a, b}, infos)

	infos, err = DecodeAll(buf[:RecordSize+5])
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 5, derr.Have)
	assert.Equal(t, []Info{a}, infos)

	infos, err = DecodeAll(nil)
	assert.NoError(t, err)
	assert.Empty(t, infos)
}
