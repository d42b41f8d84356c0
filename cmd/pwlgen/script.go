package main

import (
	"github.com/spf13/cobra"

	"github.com/edp1096/pwlgen/pkg/compile"
)

var (
	scriptMarker string
	scriptCycles int
)

func scriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script <netlist>",
		Short: "Compile the phase table embedded in a netlist",
		Long: `Compile the phase table embedded in a netlist or schematic.

The table is the text line holding the marker. Its rows are
"label, duration, dac_en, amp_sel, rebal1, rebal2[, ie_en, cap_byp, pw_amp, rpw_amp]"
with durations in microseconds; the first row is a zero-duration start row.

Examples:
  # Write dac_en.txt, amp_sel.txt, ... next to the schematic
  pwlgen script stim.asc

  # Three bursts into ./pwl
  pwlgen script stim.asc --cycles 2 --out pwl`,
		Args: cobra.ExactArgs(1),
		RunE: runScript,
	}

	cmd.Flags().StringVar(&scriptMarker, "marker", "", "Text identifying the script line (default from config)")
	cmd.Flags().IntVar(&scriptCycles, "cycles", 0, "Extra bursts appended after the first")

	return cmd
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("marker") {
		cfg.Marker = scriptMarker
	}
	if cmd.Flags().Changed("cycles") {
		cfg.Cycles = scriptCycles
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger()
	res, err := compile.FromNetlistFile(args[0], compile.OptionsFrom(cfg, logger))
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), res, cfg, logger)
}
