// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package signalfd

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"
)

// SignalFromString converts a signal name or number to its numeric value.
// Names are case-insensitive and the SIG prefix is optional.
func SignalFromString(s string) (syscall.Signal, error) {
	s = strings.TrimSpace(strings.ToUpper(s))

	if num, err := strconv.Atoi(s); err == nil {
		if valid(syscall.Signal(num)) {
			return syscall.Signal(num), nil
		}
		return 0, fmt.Errorf("signal number out of range: %d", num)
	}

	if sig, ok := signalNames[s]; ok {
		return sig, nil
	}
	if !strings.HasPrefix(s, "SIG") {
		if sig, ok := signalNames["SIG"+s]; ok {
			return sig, nil
		}
	}
	return 0, fmt.Errorf("unknown signal: %s", s)
}

// SignalName gives the name of a signal number.
func SignalName(sig syscall.Signal) string {
	if name, ok := signalNumbers[sig]; ok {
		return name
	}
	return fmt.Sprintf("SIG%d", int(sig))
}

// ExpandSignalGroup expands a signal group (e.g. "@reload") to its signal
// numbers.
func ExpandSignalGroup(group string) ([]syscall.Signal, error) {
	group = strings.ToLower(strings.TrimSpace(group))
	if group == "@all" {
		return AllSignals(), nil
	}
	if sigs, ok := signalGroups[group]; ok {
		return append([]syscall.Signal{}, sigs...), nil
	}
	return nil, fmt.Errorf("unknown signal group: %s", group)
}

// IsSignalGroup reports whether s names a signal group.
func IsSignalGroup(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "@")
}

// AllSignals gives the standard signals 1-31.
func AllSignals() []syscall.Signal {
	sigs := make([]syscall.Signal, 31)
	for i := range sigs {
		sigs[i] = syscall.Signal(i + 1)
	}
	return sigs
}

var signalNumbers = func() map[syscall.Signal]string {
	m := make(map[syscall.Signal]string, len(signalNames))
	for name, sig := range signalNames {
		m[sig] = name
	}
	return m
}()
