package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim"
	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/record"
	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/trace"
)

var showTraceLevel string

// showRecord loads a saved result record and writes its report to w.
func showRecord(w io.Writer, path string, level trace.TraceLevel) error {
	rec, err := record.Load(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Run: %s (%s)\n", rec.RunID, rec.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	if rec.CustomSource != "" {
		fmt.Fprintf(w, "Score: %s\n", rec.CustomSource)
	}
	fmt.Fprintf(w, "Reference: %s\n", sim.FormatReferenceString(rec.Reference))
	printResult(w, &sim.SimulationResult{
		Policy: rec.Policy,
		Frames: rec.Frames,
		Trace:  rec.Trace,
		Faults: rec.Faults,
	}, level)
	return nil
}

var showCmd = &cobra.Command{
	Use:   "show <record>",
	Short: "Print a saved result record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !trace.IsValidTraceLevel(showTraceLevel) {
			logrus.Fatalf("Invalid trace level %q; valid: none, steps", showTraceLevel)
		}
		if err := showRecord(cmd.OutOrStdout(), args[0], trace.TraceLevel(showTraceLevel)); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func init() {
	showCmd.Flags().StringVar(&showTraceLevel, "trace", string(trace.TraceLevelSteps), "Report detail (none, steps)")
	rootCmd.AddCommand(showCmd)
}
