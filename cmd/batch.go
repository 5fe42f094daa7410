package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim"
	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/record"
	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/workload"
)

var (
	batchInputPath  string
	batchFrames     int
	batchRecordPath string
	batchFormat     string
)

// runBatch compares every reference string of the input file and writes the report to w.
// The frame count of a workload spec is used unless --frames was given.
func runBatch(w io.Writer, inputPath string, nFrames int, framesChanged bool, recordPath, format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q; valid: text, json", format)
	}
	inputs, specFrames, err := workload.LoadInputs(inputPath)
	if err != nil {
		return err
	}
	if !framesChanged && specFrames > 0 {
		nFrames = specFrames
	}

	raw := make([]string, len(inputs))
	names := make([]string, len(inputs))
	for i, in := range inputs {
		raw[i], names[i] = in.Pages, in.Name
	}
	entries, err := sim.BatchCompare(raw, nFrames)
	if err != nil {
		return err
	}
	skipped := len(inputs) - len(entries)
	logrus.Infof("Batch: compared %d of %d reference strings with %d frames", len(entries), len(inputs), nFrames)

	if recordPath != "" {
		recorder, err := record.NewSQLiteRecorder(recordPath)
		if err != nil {
			return err
		}
		recorder.RecordBatch(nFrames, entries)
		if err := recorder.Close(); err != nil {
			return err
		}
		logrus.Infof("Batch %s recorded in %s", recorder.BatchID(), recorder.Path())
	}

	if format == "json" {
		return writeBatchJSON(w, nFrames, entries, skipped)
	}
	printBatch(w, names, nFrames, entries, skipped)
	return nil
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Compare the built-in policies over many reference strings",
	Long: "Compare FIFO, LRU and Optimal over every reference string of a file. Plain files hold one " +
		"reference string per line ('#' starts a comment); .yaml/.yml files are workload specs. " +
		"Strings with no page numbers are skipped.",
	Run: func(cmd *cobra.Command, args []string) {
		err := runBatch(cmd.OutOrStdout(), batchInputPath, batchFrames, cmd.Flags().Changed("frames"), batchRecordPath, batchFormat)
		if err != nil {
			logrus.Fatalf("Batch failed: %v", err)
		}
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchInputPath, "input", "", "File of reference strings (.txt, one per line) or workload spec (.yaml)")
	batchCmd.Flags().IntVar(&batchFrames, "frames", 3, "Number of page frames")
	batchCmd.Flags().StringVar(&batchRecordPath, "record", "", "Append results to this SQLite database")
	batchCmd.Flags().StringVar(&batchFormat, "format", "text", "Output format (text, json)")
	_ = batchCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(batchCmd)
}
