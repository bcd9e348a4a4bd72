// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

// Package cli implements the kfd command.
package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/JekaMas/kfd/internal/config"
	"github.com/spf13/cobra"
)

func NewRoot(version string) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "kfd",
		Short:         "kfd: inspect inotify and signalfd descriptors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Version = version
	cmd.SetVersionTemplate("kfd {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.config, "config", getenvDefault("KFD_CONFIG", ""), "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error (overrides config)")

	cmd.AddCommand(newWatchCmd(opts))
	cmd.AddCommand(newDecodeCmd(opts))
	cmd.AddCommand(newSignalsCmd(opts))

	return cmd
}

type rootOptions struct {
	config   string
	logLevel string
}

// load gives the configuration and a logger writing to w.
func (o *rootOptions) load(w io.Writer) (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.config != "" {
		cfg, err = config.Load(o.config)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return nil, nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	logger, err := newLogger(cfg.Log, w)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newLogger(lc config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
