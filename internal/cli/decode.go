// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/JekaMas/kfd/inotify"
	"github.com/JekaMas/kfd/signalfd"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type eventRecord struct {
	WD     int32  `yaml:"wd"`
	Mask   string `yaml:"mask"`
	Cookie uint32 `yaml:"cookie"`
	Len    uint32 `yaml:"len"`
	Name   string `yaml:"name,omitempty"`
}

type signalRecord struct {
	Signal        string `yaml:"signal"`
	signalfd.Info `yaml:",inline"`
}

func newDecodeCmd(o *rootOptions) *cobra.Command {
	var (
		kind   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode raw inotify events or signalfd records",
		Long: `Decode a buffer captured from an inotify or signalfd descriptor.

The buffer is read from file, or from stdin when no file is given. Its size
must be the number of bytes returned by the read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := o.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			var buf []byte
			if len(args) == 1 {
				buf, err = os.ReadFile(args[0])
			} else {
				buf, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read buffer: %w", err)
			}
			log.Debug("decoding", "kind", kind, "bytes", len(buf))

			out := cmd.OutOrStdout()
			switch kind {
			case "inotify":
				return decodeEvents(out, buf, format)
			case "signalfd":
				return decodeSignals(out, buf, format)
			default:
				return fmt.Errorf("unknown kind %q: want inotify or signalfd", kind)
			}
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "inotify", "Buffer kind: inotify|signalfd")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|yaml")
	return cmd
}

func decodeEvents(out io.Writer, buf []byte, format string) error {
	events, derr := inotify.Events(buf)
	switch format {
	case "yaml":
		records := make([]eventRecord, 0, len(events))
		for _, ev := range events {
			records = append(records, eventRecord{
				WD:     int32(ev.WD),
				Mask:   ev.Mask.String(),
				Cookie: ev.Cookie,
				Len:    ev.Len,
				Name:   ev.Name,
			})
		}
		if err := encodeYAML(out, records); err != nil {
			return err
		}
	case "text":
		for _, ev := range events {
			printEvent(out, ev)
		}
	default:
		return fmt.Errorf("unknown format %q: want text or yaml", format)
	}
	return derr
}

func decodeSignals(out io.Writer, buf []byte, format string) error {
	infos, derr := signalfd.DecodeAll(buf)
	switch format {
	case "yaml":
		records := make([]signalRecord, 0, len(infos))
		for _, info := range infos {
			records = append(records, signalRecord{Signal: signalfd.SignalName(info.Signal()), Info: info})
		}
		if err := encodeYAML(out, records); err != nil {
			return err
		}
	case "text":
		for _, info := range infos {
			fmt.Fprintln(out, info)
		}
	default:
		return fmt.Errorf("unknown format %q: want text or yaml", format)
	}
	return derr
}

func encodeYAML(out io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
