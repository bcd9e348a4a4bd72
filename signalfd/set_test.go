// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package signalfd

import (
	"strconv"
	"syscall"
	"testing"

	"github.com/JekaMas/kfd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	var s Set
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Signals())

	require.NoError(t, s.Add(1, 10, 34, 63, MaxSignal))
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, []syscall.Signal{1, 10, 34, 63, MaxSignal}, s.Signals())
	for _, sig := range []syscall.Signal{1, 10, 34, 63, MaxSignal} {
		assert.True(t, s.Has(sig), "sig=%d", sig)
	}
	for _, sig := range []syscall.Signal{0, 2, 33, 62, MaxSignal + 1, -1} {
		assert.False(t, s.Has(sig), "sig=%d", sig)
	}

	s.Del(10, 63, 0, 500)
	assert.Equal(t, []syscall.Signal{1, 34, MaxSignal}, s.Signals())
}

func TestSetAddInvalid(t *testing.T) {
	s, err := NewSet(2, 0, 3, MaxSignal+1)
	var e *kfd.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "sigaddset", e.Op)
	assert.ErrorIs(t, err, syscall.EINVAL)
	assert.Equal(t, []syscall.Signal{2, 3}, s.Signals())
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "{}", Set{}.String())
	s, err := NewSet(40)
	require.NoError(t, err)
	assert.Equal(t, "{SIG40}", s.String())
}

func TestSetAboveNSIG(t *testing.T) {
	cases := []syscall.Signal{MaxSignal + 1, MaxSignal + 36, 129, 200}
	for _, sig := range cases {
		s, err := NewSet(sig)
		assert.ErrorIs(t, err, syscall.EINVAL, "sig=%d", sig)
		assert.Zero(t, s.Len(), "sig=%d", sig)
		assert.False(t, s.Has(sig), "sig=%d", sig)

		_, err = ParseSet(strconv.Itoa(int(sig)))
		assert.Error(t, err, "sig=%d", sig)
	}
}
