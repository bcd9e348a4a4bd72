// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package signalfd

import (
	"encoding/binary"
	"fmt"
	"io"
	"syscall"
)

// RecordSize is the size of struct signalfd_siginfo. A read from a signalfd
// returns a whole multiple of it.
const RecordSize = 128

// Info is a decoded struct signalfd_siginfo.
type Info struct {
	Signo    uint32 // signal number
	Errno    int32  // error number, unused on Linux
	Code     int32  // signal code, e.g. SI_USER or SI_TKILL
	PID      uint32 // PID of sender
	UID      uint32 // real UID of sender
	FD       int32  // file descriptor (SIGIO)
	TID      uint32 // kernel timer ID (POSIX timers)
	Band     uint32 // band event (SIGIO)
	Overrun  uint32 // POSIX timer overrun count
	Trapno   uint32 // trap number that caused the signal
	Status   int32  // exit status or signal (SIGCHLD)
	Int      int32  // integer sent by sigqueue(3)
	Ptr      uint64 // pointer sent by sigqueue(3)
	Utime    uint64 // user CPU time consumed (SIGCHLD)
	Stime    uint64 // system CPU time consumed (SIGCHLD)
	Addr     uint64 // address that generated the signal
	AddrLSB  uint16 // least significant bit of address (SIGBUS)
	Syscall  int32  // system call number (SIGSYS)
	CallAddr uint64 // system call address (SIGSYS)
	Arch     uint32 // system call architecture (SIGSYS)
}

// Signal gives the signal number as syscall.Signal.
func (i Info) Signal() syscall.Signal { return syscall.Signal(i.Signo) }

// String implements fmt.Stringer interface.
func (i Info) String() string {
	return fmt.Sprintf("%s: code=%d pid=%d uid=%d", SignalName(i.Signal()), i.Code, i.PID, i.UID)
}

// DecodeError is returned for records shorter than RecordSize.
type DecodeError struct {
	Have int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("signalfd: short record: need %d bytes, have %d", RecordSize, e.Have)
}

// Unwrap gives io.ErrUnexpectedEOF.
func (e *DecodeError) Unwrap() error { return io.ErrUnexpectedEOF }

// Decode decodes the first RecordSize bytes of rec.
func Decode(rec []byte) (Info, error) {
	if len(rec) < RecordSize {
		return Info{}, &DecodeError{Have: len(rec)}
	}
	rec = rec[:RecordSize]
	u32 := func(off int) uint32 { return binary.NativeEndian.Uint32(rec[off : off+4]) }
	u64 := func(off int) uint64 { return binary.NativeEndian.Uint64(rec[off : off+8]) }
	return Info{
		Signo:    u32(0),
		Errno:    int32(u32(4)),
		Code:     int32(u32(8)),
		PID:      u32(12),
		UID:      u32(16),
		FD:       int32(u32(20)),
		TID:      u32(24),
		Band:     u32(28),
		Overrun:  u32(32),
		Trapno:   u32(36),
		Status:   int32(u32(40)),
		Int:      int32(u32(44)),
		Ptr:      u64(48),
		Utime:    u64(56),
		Stime:    u64(64),
		Addr:     u64(72),
		AddrLSB:  binary.NativeEndian.Uint16(rec[80:82]),
		Syscall:  int32(u32(84)),
		CallAddr: u64(88),
		Arch:     u32(96),
	}, nil
}

// MustDecode is like Decode but panics on a short record.
func MustDecode(rec []byte) Info {
	i, err := Decode(rec)
	if err != nil {
		panic(err)
	}
	return i
}

// DecodeAll decodes every whole record in buf. Trailing bytes that do not
// form a whole record are reported as *DecodeError.
func DecodeAll(buf []byte) ([]Info, error) {
	infos := make([]Info, 0, len(buf)/RecordSize)
	for len(buf) >= RecordSize {
		infos = append(infos, MustDecode(buf))
		buf = buf[RecordSize:]
	}
	if len(buf) != 0 {
		return infos, &DecodeError{Have: len(buf)}
	}
	return infos, nil
}

// Encode writes i in the layout the kernel uses. Padding is zeroed.
func Encode(i Info) []byte {
	rec := make([]byte, RecordSize)
	u32 := func(off int, v uint32) { binary.NativeEndian.PutUint32(rec[off:off+4], v) }
	u64 := func(off int, v uint64) { binary.NativeEndian.PutUint64(rec[off:off+8], v) }
	u32(0, i.Signo)
	u32(4, uint32(i.Errno))
	u32(8, uint32(i.Code))
	u32(12, i.PID)
	u32(16, i.UID)
	u32(20, uint32(i.FD))
	u32(24, i.TID)
	u32(28, i.Band)
	u32(32, i.Overrun)
	u32(36, i.Trapno)
	u32(40, uint32(i.Status))
	u32(44, uint32(i.Int))
	u64(48, i.Ptr)
	u64(56, i.Utime)
	u64(64, i.Stime)
	u64(72, i.Addr)
	binary.NativeEndian.PutUint16(rec[80:82], i.AddrLSB)
	u32(84, uint32(i.Syscall))
	u64(88, i.CallAddr)
	u32(96, i.Arch)
	return rec
}
