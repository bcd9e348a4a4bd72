// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

//go:build !windows

package signalfd

import (
	"syscall"

	"golang.org/x/sys/unix"
)

var signalNames = map[string]syscall.Signal{
	"SIGHUP":    unix.SIGHUP,
	"SIGINT":    unix.SIGINT,
	"SIGQUIT":   unix.SIGQUIT,
	"SIGILL":    unix.SIGILL,
	"SIGTRAP":   unix.SIGTRAP,
	"SIGABRT":   unix.SIGABRT,
	"SIGBUS":    unix.SIGBUS,
	"SIGFPE":    unix.SIGFPE,
	"SIGKILL":   unix.SIGKILL,
	"SIGUSR1":   unix.SIGUSR1,
	"SIGSEGV":   unix.SIGSEGV,
	"SIGUSR2":   unix.SIGUSR2,
	"SIGPIPE":   unix.SIGPIPE,
	"SIGALRM":   unix.SIGALRM,
	"SIGTERM":   unix.SIGTERM,
	"SIGCHLD":   unix.SIGCHLD,
	"SIGCONT":   unix.SIGCONT,
	"SIGSTOP":   unix.SIGSTOP,
	"SIGTSTP":   unix.SIGTSTP,
	"SIGTTIN":   unix.SIGTTIN,
	"SIGTTOU":   unix.SIGTTOU,
	"SIGURG":    unix.SIGURG,
	"SIGXCPU":   unix.SIGXCPU,
	"SIGXFSZ":   unix.SIGXFSZ,
	"SIGVTALRM": unix.SIGVTALRM,
	"SIGPROF":   unix.SIGPROF,
	"SIGWINCH":  unix.SIGWINCH,
	"SIGIO":     unix.SIGIO,
	"SIGSYS":    unix.SIGSYS,
}

// Signal groups for configuration convenience. "@all" is computed by
// ExpandSignalGroup.
var signalGroups = map[string][]syscall.Signal{
	"@fatal":  {unix.SIGKILL, unix.SIGTERM, unix.SIGQUIT, unix.SIGABRT},
	"@job":    {unix.SIGSTOP, unix.SIGCONT, unix.SIGTSTP, unix.SIGTTIN, unix.SIGTTOU},
	"@reload": {unix.SIGHUP, unix.SIGUSR1, unix.SIGUSR2},
	"@ignore": {unix.SIGCHLD, unix.SIGURG, unix.SIGWINCH},
}
