package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim"
)

var (
	compareRefs   string
	comparePreset string
	compareFrames int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare FIFO, LRU and Optimal on one reference string",
	Run: func(cmd *cobra.Command, args []string) {
		refs, nFrames, err := resolveInput(cmd, compareRefs, comparePreset, compareFrames)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		result, err := sim.Compare(refs, nFrames)
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
		printComparison(cmd.OutOrStdout(), refs, nFrames, result)
	},
}

func init() {
	addInputFlags(compareCmd, &compareRefs, &comparePreset, &compareFrames)
	rootCmd.AddCommand(compareCmd)
}
