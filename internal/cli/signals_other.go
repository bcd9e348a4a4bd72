// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

//go:build !linux

package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/JekaMas/kfd"
	"github.com/JekaMas/kfd/signalfd"
)

func runSignals(ctx context.Context, out io.Writer, log *slog.Logger, set signalfd.Set, raise bool) error {
	return &kfd.Error{Op: "signalfd", Err: errors.ErrUnsupported}
}
