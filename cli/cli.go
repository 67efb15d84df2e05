// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli provides the aereaconfiavel command line interface.
// Config values come from the defaults, then the --config file, then
// the command line flags, with later sources overriding earlier ones.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PedroRussoUnB/AereaConfiavel/base/logx"
	"github.com/PedroRussoUnB/AereaConfiavel/config"
	"github.com/PedroRussoUnB/AereaConfiavel/plot"
	"github.com/PedroRussoUnB/AereaConfiavel/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Options are the command line options shared by all commands.
type Options struct {

	// ConfigFile is the TOML config file to load, if any.
	ConfigFile string

	// Format is the output format, one of [report.Formats].
	Format string

	// Charts is the directory to write PNG charts to, if any.
	Charts string

	// Verbose, VeryVerbose and Quiet set the log level.
	Verbose, VeryVerbose, Quiet bool

	// Config is the config the flags are bound to.
	Config *config.Config

	// flags and overrides are the parsed flag set and the
	// flags set explicitly on the command line.
	flags     *pflag.FlagSet
	overrides map[string]string
}

// NewRoot returns the root command, writing its output to out.
func NewRoot(out io.Writer) *cobra.Command {
	opts := &Options{Config: config.New()}
	root := &cobra.Command{
		Use:           "aereaconfiavel",
		Short:         "Scenario analysis for airline overbooking and forecasting ROI",
		Long:          "aereaconfiavel computes overbooking risk, return on investment with Monte Carlo simulation, normal and poisson probabilities, call center profit distributions and an adoption recommendation.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.ConfigFile, "config", "c", "", "TOML config `file` (flags override its values)")
	pf.Int64Var(&opts.Config.Seed, "seed", opts.Config.Seed, "random seed of the simulations")
	pf.StringVar(&opts.Config.Locale, "locale", opts.Config.Locale, "locale of formatted numbers")
	pf.StringVar(&opts.Config.Currency, "currency", opts.Config.Currency, "currency symbol")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "show info log messages")
	pf.BoolVar(&opts.VeryVerbose, "vv", false, "show debug log messages")
	pf.BoolVarP(&opts.Quiet, "quiet", "q", false, "only show error log messages")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logx.UserLevel = logx.LevelFromFlags(opts.VeryVerbose, opts.Verbose, opts.Quiet)
		logx.SetDefaultLogger()
		return opts.load(cmd.Flags())
	}

	root.AddCommand(
		sectionCmd(opts, report.Overbooking, "Probability of more passengers showing up than seats", overbookingFlags),
		sectionCmd(opts, report.ROI, "Return on investment with Monte Carlo revenue simulation", roiFlags),
		decideCmd(opts),
		sectionCmd(opts, report.Normal, "Probability of a normal variable falling in an interval", normalFlags),
		sectionCmd(opts, report.Poisson, "Poisson probability table", poissonFlags),
		sectionCmd(opts, report.CallCenter, "Call center profit distribution", callCenterFlags),
		reportCmd(opts),
		watchCmd(opts),
		serveCmd(opts),
		followCmd(opts),
		initConfigCmd(opts),
	)
	return root
}

// load applies the config file under the flags that were set
// explicitly, and validates the result. The explicit flags are
// remembered so that [Options.reload] can apply them again.
func (opts *Options) load(fs *pflag.FlagSet) error {
	opts.flags = fs
	opts.overrides = map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		// slice flags append on Set and are not config values
		if !strings.HasSuffix(f.Value.Type(), "Slice") {
			opts.overrides[f.Name] = f.Value.String()
		}
	})
	if opts.ConfigFile == "" {
		return opts.Config.Validate()
	}
	if err := opts.Config.Open(opts.ConfigFile); err != nil {
		return err
	}
	if err := opts.apply(); err != nil {
		return err
	}
	slog.Debug("applied config file", "file", opts.ConfigFile, "overrides", len(opts.overrides))
	if err := opts.Config.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", opts.ConfigFile, err)
	}
	return nil
}

// apply sets the explicit flags again, overwriting the values
// that came from the config file.
func (opts *Options) apply() error {
	if opts.flags == nil {
		return nil
	}
	for name, val := range opts.overrides {
		if err := opts.flags.Set(name, val); err != nil {
			return fmt.Errorf("flag --%s: %w", name, err)
		}
	}
	return nil
}

// reload makes cfg, freshly read from the config file, the current
// config with the explicit flags applied on top, and returns a
// validated copy of the result.
func (opts *Options) reload(cfg *config.Config) (*config.Config, error) {
	*opts.Config = *cfg
	if err := opts.apply(); err != nil {
		return nil, err
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	cp := *opts.Config
	return &cp, nil
}

func (opts *Options) formatter() *report.Formatter {
	return report.NewFormatter(opts.Config.Locale, opts.Config.Currency)
}

func addOutputFlags(fs *pflag.FlagSet, opts *Options) {
	fs.StringVarP(&opts.Format, "format", "f", "text", "output format: "+strings.Join(report.Formats, ", "))
	fs.StringVar(&opts.Charts, "charts", "", "write PNG charts to `dir`")
}

// output writes the report in the selected format, plus its charts
// when a charts directory is set. The csv format writes the first
// of the given sections.
func (opts *Options) output(w io.Writer, rep *report.Report, sections ...report.Section) error {
	sec := report.Overbooking
	if len(sections) > 0 {
		sec = sections[0]
	}
	if err := report.Write(w, rep, opts.Format, opts.formatter(), sec); err != nil {
		return err
	}
	if opts.Charts == "" {
		return nil
	}
	files, err := plot.WriteFiles(opts.Charts, rep, plot.DefaultSize)
	slog.Info("wrote charts", "dir", opts.Charts, "n", len(files))
	return err
}
