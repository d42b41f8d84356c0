package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edp1096/pwlgen/internal/version"
)

var (
	// Build variables set by ldflags
	buildVersion string
	buildCommit  string
	buildTime    string

	// Global flags
	configPath string
	outputDir  string
	timeUnit   string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pwlgen",
		Short: "Compile phase tables and digital traces into PWL waveform files",
		Long: `pwlgen turns a phase table embedded in a netlist, a recorded digital
trace, or an AC stimulation spec into one piecewise-linear breakpoint file
per control channel, ready for a SPICE PWL source.`,
		Version:       version.GetVersion(buildVersion, buildCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML or TOML config file")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "out", "o", ".", "Output directory for the channel files")
	rootCmd.PersistentFlags().StringVar(&timeUnit, "unit", "u", "Suffix written after each breakpoint time")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each compilation stage to stderr")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(scriptCmd())
	rootCmd.AddCommand(traceCmd())
	rootCmd.AddCommand(acCmd())
	rootCmd.AddCommand(paramCmd())
	rootCmd.AddCommand(paramsCmd())
	rootCmd.AddCommand(probeCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(version.GetDetailedVersion(buildVersion, buildCommit, buildTime))
		},
	}
}
