// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/PedroRussoUnB/AereaConfiavel/base/errors"
	"github.com/PedroRussoUnB/AereaConfiavel/base/websocket"
	"github.com/PedroRussoUnB/AereaConfiavel/config"
	"github.com/PedroRussoUnB/AereaConfiavel/report"
	"github.com/PedroRussoUnB/AereaConfiavel/server"
	"github.com/PedroRussoUnB/AereaConfiavel/watch"
	"github.com/spf13/cobra"
)

// sectionCmd returns a command that computes a single section.
func sectionCmd(opts *Options, sec report.Section, short string, bind flagBinder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   sec.String(),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := report.Build(opts.Config, sec)
			if err != nil {
				return err
			}
			return opts.output(cmd.OutOrStdout(), rep, sec)
		},
	}
	bind(cmd.Flags(), opts.Config)
	addOutputFlags(cmd.Flags(), opts)
	return cmd
}

func decideCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Recommend whether to adopt the forecasting system from its ROI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := report.Build(opts.Config, report.ROI, report.Decision)
			if err != nil {
				return err
			}
			return opts.output(cmd.OutOrStdout(), rep, report.ROI)
		},
	}
	roiFlags(cmd.Flags(), opts.Config)
	addOutputFlags(cmd.Flags(), opts)
	return cmd
}

func reportCmd(opts *Options) *cobra.Command {
	var names []string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute every scenario, or the named sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sections []report.Section
			for _, nm := range names {
				sec, err := report.ParseSection(nm)
				if err != nil {
					return err
				}
				sections = append(sections, sec)
			}
			rep, err := report.Build(opts.Config, sections...)
			if err != nil {
				return err
			}
			return opts.output(cmd.OutOrStdout(), rep, sections...)
		},
	}
	cmd.Flags().StringSliceVarP(&names, "sections", "s", nil, "sections to compute (default all)")
	addOutputFlags(cmd.Flags(), opts)
	return cmd
}

// interruptContext returns a context canceled on interrupt.
func interruptContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}

func watchCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recompute the full report every time the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ConfigFile == "" {
				return errors.New("watch: --config is required")
			}
			out := cmd.OutOrStdout()
			w, err := watch.New(opts.ConfigFile, func(cfg *config.Config) {
				cfg, err := opts.reload(cfg)
				if err != nil {
					slog.Error("invalid config, keeping previous results", "err", err)
					return
				}
				rep, err := report.Build(cfg)
				if err != nil {
					slog.Error("report failed", "err", err)
					return
				}
				if err := opts.output(out, rep); err != nil {
					slog.Error("output failed", "err", err)
				}
			})
			if err != nil {
				return err
			}
			w.OnError = func(err error) {
				slog.Error("invalid config, keeping previous results", "err", err)
			}
			ctx, cancel := interruptContext(cmd)
			defer cancel()
			if err := w.Run(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	addOutputFlags(cmd.Flags(), opts)
	return cmd
}

func serveCmd(opts *Options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scenarios over HTTP with a live WebSocket report feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := interruptContext(cmd)
			defer cancel()
			initial := *opts.Config
			srv := server.New(&initial)
			if opts.ConfigFile != "" {
				w, err := watch.New(opts.ConfigFile, func(cfg *config.Config) {
					cfg, err := opts.reload(cfg)
					if err != nil {
						slog.Error("invalid config, keeping previous results", "err", err)
						return
					}
					srv.SetConfig(cfg)
				})
				if err != nil {
					return err
				}
				go w.Run(ctx)
			}
			hs := &http.Server{Addr: addr, Handler: srv.Handler(), ReadHeaderTimeout: 10 * time.Second}
			go func() {
				<-ctx.Done()
				sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer scancel()
				hs.Shutdown(sctx)
			}()
			slog.Warn("serving at http://" + addr)
			if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "network address to listen on")
	return cmd
}

func followCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "follow <url>",
		Short: "Print every report pushed by a running server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := interruptContext(cmd)
			defer cancel()
			cl, err := websocket.Connect(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			cl.OnMessage(func(typ websocket.MessageTypes, msg []byte) {
				rep := &report.Report{}
				if err := json.Unmarshal(msg, rep); err != nil {
					slog.Error("invalid report", "err", err)
					return
				}
				if err := opts.output(out, rep); err != nil {
					slog.Error("output failed", "err", err)
				}
			})
			select {
			case <-cl.Done():
				return nil
			case <-ctx.Done():
				return cl.Close()
			}
		},
	}
	addOutputFlags(cmd.Flags(), opts)
	return cmd
}

func initConfigCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config <file>",
		Short: "Write the current config, defaults included, to a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Config.Save(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", args[0])
			return nil
		},
	}
}
