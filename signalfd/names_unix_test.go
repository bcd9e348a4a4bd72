// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

//go:build !windows

package signalfd

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestSignalFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected syscall.Signal
		wantErr  bool
	}{
		{"SIGKILL", unix.SIGKILL, false},
		{"sigterm", unix.SIGTERM, false},
		{"usr1", unix.SIGUSR1, false},
		{" HUP ", unix.SIGHUP, false},
		{"9", 9, false},
		{"64", 64, false},
		{"0", 0, true},
		{"129", 0, true},
		{"INVALID", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sig, err := SignalFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, sig)
			}
		})
	}
}

func TestSignalName(t *testing.T) {
	assert.Equal(t, "SIGUSR1", SignalName(unix.SIGUSR1))
	assert.Equal(t, "SIGCHLD", SignalName(unix.SIGCHLD))
	assert.Equal(t, "SIG99", SignalName(99))
}

func TestExpandSignalGroup(t *testing.T) {
	tests := []struct {
		group    string
		expected []syscall.Signal
		wantErr  bool
	}{
		{"@fatal", []syscall.Signal{unix.SIGKILL, unix.SIGTERM, unix.SIGQUIT, unix.SIGABRT}, false},
		{"@RELOAD", []syscall.Signal{unix.SIGHUP, unix.SIGUSR1, unix.SIGUSR2}, false},
		{"@invalid", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			signals, err := ExpandSignalGroup(tt.group)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.ElementsMatch(t, tt.expected, signals)
			}
		})
	}

	all, err := ExpandSignalGroup("@all")
	require.NoError(t, err)
	assert.Len(t, all, 31)
}

func TestParseSet(t *testing.T) {
	s, err := ParseSet("usr1", "@reload", "15", "SIGCHLD")
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())
	for _, sig := range []syscall.Signal{unix.SIGUSR1, unix.SIGUSR2, unix.SIGHUP, unix.SIGTERM, unix.SIGCHLD} {
		assert.True(t, s.Has(sig), "sig=%v", sig)
	}

	_, err = ParseSet("usr1", "nope")
	assert.Error(t, err)
	_, err = ParseSet("@nope")
	assert.Error(t, err)

	s, err = ParseSet()
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}
