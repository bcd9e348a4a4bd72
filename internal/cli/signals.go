// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package cli

import (
	"errors"

	"github.com/JekaMas/kfd/signalfd"
	"github.com/spf13/cobra"
)

func newSignalsCmd(o *rootOptions) *cobra.Command {
	var raise bool
	cmd := &cobra.Command{
		Use:   "signals [signal...]",
		Short: "Receive signals through a signalfd",
		Long: `Block the given signals on a dedicated thread and print every one of them
read through a signalfd.

Signals may be given as names (SIGUSR1, usr1), numbers or groups (@reload),
and are added to those from the config file. The process and thread IDs are
logged on start; a signal must be directed at that thread, e.g. with
tgkill(2), to be received. With --raise each signal is sent to the thread
once and the command exits after all of them were read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := o.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			set, err := signalfd.ParseSet(append(append([]string{}, cfg.Signals...), args...)...)
			if err != nil {
				return err
			}
			if set.Len() == 0 {
				return errors.New("no signals given")
			}
			return runSignals(cmd.Context(), cmd.OutOrStdout(), log, set, raise)
		},
	}
	cmd.Flags().BoolVar(&raise, "raise", false, "Send each signal to the receiving thread and exit once all were read")
	return cmd
}
