package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/edp1096/pwlgen/internal/consts"
	"github.com/edp1096/pwlgen/pkg/compile"
	"github.com/edp1096/pwlgen/pkg/config"
	"github.com/edp1096/pwlgen/pkg/util"
)

// loadConfig reads --config when given; explicitly set global flags win.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("out") || configPath == "" {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("unit") || configPath == "" {
		cfg.TimeUnit = timeUnit
	}
	return cfg, cfg.Validate()
}

func newLogger() *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "pwlgen: ", log.Ltime)
}

func writeResult(w io.Writer, res *compile.Result, cfg config.Config, logger *log.Logger) error {
	if res.Timing != nil {
		tm := res.Timing
		fmt.Fprintf(w, "Pulse width:      %s\n", util.FormatValueFactor(tm.PulseWidth/consts.MicroScale, "s"))
		fmt.Fprintf(w, "Gap 0:            %s\n", util.FormatValueFactor(tm.Gap0/consts.MicroScale, "s"))
		fmt.Fprintf(w, "Rebalance width:  %s\n", util.FormatValueFactor(tm.RebalanceWidth/consts.MicroScale, "s"))
		fmt.Fprintf(w, "Gap 1:            %s\n", util.FormatValueFactor(tm.Gap1/consts.MicroScale, "s"))
		fmt.Fprintf(w, "Period:           %s\n", util.FormatValueFactor(tm.Period()/consts.MicroScale, "s"))
		fmt.Fprintf(w, "Frequency:        %s\n", util.FormatFrequency(tm.Frequency()))
	}

	paths, err := res.WriteFiles(cfg.OutputDir, cfg.TimeUnit, logger)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
	return nil
}
