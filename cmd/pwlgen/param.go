package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edp1096/pwlgen/pkg/netlist"
	"github.com/edp1096/pwlgen/pkg/pwl"
	"github.com/edp1096/pwlgen/pkg/util"
)

func paramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "param <name=value>...",
		Short: "Scale SPICE parameter strings to base units",
		Long: `Scale SPICE parameter strings to base units.

Examples:
  pwlgen param pw=240u rf=1meg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				p, err := netlist.ParseParam(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", p.Name, util.FormatNumber(p.Value))
			}
			return nil
		},
	}
}

func paramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params <netlist>",
		Short: "List the .param assignments of a netlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "opening netlist")
			}
			defer f.Close()

			params, err := netlist.ScanParams(f)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(params))
			for name := range params {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, util.FormatNumber(params[name]))
			}
			return nil
		},
	}
}

func probeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file.txt> <time>...",
		Short: "Evaluate a PWL file at the given times",
		Long: `Evaluate a PWL file at the given times, in the file's time unit.

Examples:
  pwlgen probe amp_sel.txt 0 120 241.5`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := pwl.ReadFile(args[0], timeUnit)
			if err != nil {
				return err
			}

			for _, arg := range args[1:] {
				t, err := netlist.ParseValue(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s(%s) = %s\n", w.Label, util.FormatTime(t, timeUnit), util.FormatNumber(w.ValueAt(t)))
			}
			return nil
		},
	}
}
