package main

import (
	"github.com/spf13/cobra"

	"github.com/edp1096/pwlgen/pkg/compile"
	"github.com/edp1096/pwlgen/pkg/pulse"
)

var acSpec = pulse.DefaultACSpec()

func acCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ac",
		Short: "Generate the PWL files of a biphasic pulse train",
		Long: `Generate the PWL files of a biphasic pulse train.

Pulse width and inter-pulse interval are rounded down to 15 us; the
rebalance pulse is --rpr times the pulse width and the last gap fills the
requested period.

Examples:
  # 500 Hz, 240 us pulses, 3 bursts
  pwlgen ac

  # 1 mA at 100 Hz, single burst
  pwlgen ac --amplitude -1000 --frequency 100 --cycles 0`,
		Args: cobra.NoArgs,
		RunE: runAC,
	}

	cmd.Flags().Float64Var(&acSpec.AmplitudeUA, "amplitude", acSpec.AmplitudeUA, "Pulse amplitude in uA")
	cmd.Flags().Float64Var(&acSpec.PulseWidthUS, "pulse-width", acSpec.PulseWidthUS, "Pulse width in us")
	cmd.Flags().Float64Var(&acSpec.IPIUS, "ipi", acSpec.IPIUS, "Inter-pulse interval in us")
	cmd.Flags().Float64Var(&acSpec.RPR, "rpr", acSpec.RPR, "Rebalance to pulse width ratio")
	cmd.Flags().Float64Var(&acSpec.FrequencyHz, "frequency", acSpec.FrequencyHz, "Requested pulse frequency in Hz")
	cmd.Flags().IntVar(&acSpec.Cycles, "cycles", acSpec.Cycles, "Extra bursts appended after the first")

	return cmd
}

func runAC(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Flags left at their default take the config file value.
	spec := cfg.AC
	flags := cmd.Flags()
	if flags.Changed("amplitude") {
		spec.AmplitudeUA = acSpec.AmplitudeUA
	}
	if flags.Changed("pulse-width") {
		spec.PulseWidthUS = acSpec.PulseWidthUS
	}
	if flags.Changed("ipi") {
		spec.IPIUS = acSpec.IPIUS
	}
	if flags.Changed("rpr") {
		spec.RPR = acSpec.RPR
	}
	if flags.Changed("frequency") {
		spec.FrequencyHz = acSpec.FrequencyHz
	}
	if flags.Changed("cycles") {
		spec.Cycles = acSpec.Cycles
	}

	logger := newLogger()
	res, err := compile.FromAC(spec, compile.OptionsFrom(cfg, logger))
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), res, cfg, logger)
}
