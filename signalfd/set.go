// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package signalfd

import (
	"math/bits"
	"strings"
	"syscall"

	"github.com/JekaMas/kfd"
)

// MaxSignal is the highest signal number a Set can hold. It is the kernel's
// _NSIG for the target architecture: signalfd(2) ignores any bit above it.
const MaxSignal = nsig

// Set is a set of signal numbers. The zero value is an empty set.
type Set struct {
	bits [2]uint64
}

// NewSet gives a Set holding sigs.
func NewSet(sigs ...syscall.Signal) (Set, error) {
	var s Set
	err := s.Add(sigs...)
	return s, err
}

func valid(sig syscall.Signal) bool {
	return sig >= 1 && sig <= MaxSignal
}

// Add adds sigs to s. Signal numbers outside of 1..MaxSignal fail with
// EINVAL, as sigaddset(3) does; the valid ones are added regardless.
func (s *Set) Add(sigs ...syscall.Signal) error {
	var err error
	for _, sig := range sigs {
		if !valid(sig) {
			err = &kfd.Error{Op: "sigaddset", Errno: syscall.EINVAL}
			continue
		}
		n := uint(sig - 1)
		s.bits[n/64] |= 1 << (n % 64)
	}
	return err
}

// Del removes sigs from s. Invalid signal numbers are ignored.
func (s *Set) Del(sigs ...syscall.Signal) {
	for _, sig := range sigs {
		if valid(sig) {
			n := uint(sig - 1)
			s.bits[n/64] &^= 1 << (n % 64)
		}
	}
}

// Has reports whether sig is in s.
func (s Set) Has(sig syscall.Signal) bool {
	if !valid(sig) {
		return false
	}
	n := uint(sig - 1)
	return s.bits[n/64]&(1<<(n%64)) != 0
}

// Len gives the number of signals in s.
func (s Set) Len() (n int) {
	for _, b := range s.bits {
		n += bits.OnesCount64(b)
	}
	return
}

// Signals gives the signals in s in ascending order.
func (s Set) Signals() []syscall.Signal {
	sigs := make([]syscall.Signal, 0, s.Len())
	for i, b := range s.bits {
		for b != 0 {
			n := bits.TrailingZeros64(b)
			sigs = append(sigs, syscall.Signal(i*64+n+1))
			b &^= 1 << uint(n)
		}
	}
	return sigs
}

// String implements fmt.Stringer interface.
func (s Set) String() string {
	names := make([]string, 0, s.Len())
	for _, sig := range s.Signals() {
		names = append(names, SignalName(sig))
	}
	return "{" + strings.Join(names, ",") + "}"
}

// ParseSet builds a Set from signal names, numbers and groups, see
// SignalFromString and ExpandSignalGroup.
func ParseSet(names ...string) (Set, error) {
	var s Set
	for _, name := range names {
		if IsSignalGroup(name) {
			sigs, err := ExpandSignalGroup(name)
			if err != nil {
				return Set{}, err
			}
			if err := s.Add(sigs...); err != nil {
				return Set{}, err
			}
			continue
		}
		sig, err := SignalFromString(name)
		if err != nil {
			return Set{}, err
		}
		if err := s.Add(sig); err != nil {
			return Set{}, err
		}
	}
	return s, nil
}
