package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edp1096/pwlgen/pkg/compile"
	"github.com/edp1096/pwlgen/pkg/trace"
)

var (
	traceColumns    []string
	traceTimeColumn string
	traceMax        float64
	traceScale      float64
	traceRise       float64
	traceRaw        bool
	traceExpr       bool
)

func traceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <trace.csv>",
		Short: "Convert a recorded digital trace into PWL files",
		Long: `Convert a recorded digital trace into PWL files.

The CSV needs a header row and a time column in seconds. Each selected
channel becomes one file; levels are mapped to 0 or --max.

Examples:
  # Every channel of the recording
  pwlgen trace capture.csv

  # One channel, also print the inline PWL(...) expression
  pwlgen trace capture.csv --column dac_en --expr`,
		Args: cobra.ExactArgs(1),
		RunE: runTrace,
	}

	cmd.Flags().StringSliceVar(&traceColumns, "column", nil, "Channel column to convert (repeatable, default all)")
	cmd.Flags().StringVar(&traceTimeColumn, "time-column", trace.DefaultTimeColumn, "Name of the time column")
	cmd.Flags().Float64Var(&traceMax, "max", 3, "High level of a binary channel")
	cmd.Flags().Float64Var(&traceScale, "scale", 1e6, "Factor from trace time to output time")
	cmd.Flags().Float64Var(&traceRise, "rise", 1, "Time between the held and the new level, in output units")
	cmd.Flags().BoolVar(&traceRaw, "raw", false, "Keep recorded levels instead of mapping to 0/--max")
	cmd.Flags().BoolVar(&traceExpr, "expr", false, "Print the inline PWL expression of each channel")

	return cmd
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("time-column") || configPath == "" {
		cfg.Trace.TimeColumn = traceTimeColumn
	}
	if flags.Changed("max") {
		cfg.Trace.MaxValue = traceMax
	}
	if flags.Changed("scale") {
		cfg.Trace.TimeScale = traceScale
	}
	if flags.Changed("rise") {
		cfg.Trace.RiseTime = traceRise
	}
	if flags.Changed("raw") {
		cfg.Trace.Raw = traceRaw
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "opening trace")
	}
	defer f.Close()

	tbl, err := trace.ReadCSV(f, cfg.Trace.TimeColumn)
	if err != nil {
		return errors.Wrapf(err, "%s", args[0])
	}

	logger := newLogger()
	res, err := compile.FromTrace(tbl, traceColumns, compile.OptionsFrom(cfg, logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if traceExpr {
		for _, w := range res.Waveforms {
			fmt.Fprintf(out, "%s: %s\n", w.Label, w.Expression(cfg.TimeUnit))
		}
	}
	return writeResult(out, res, cfg, logger)
}
