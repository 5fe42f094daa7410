package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim"
	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/workload"
)

var genConfig workload.GeneratorConfig

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random reference string",
	Long:  "Generate a reference string from a seed. Output is written to stdout for piping into --refs or a batch file.",
	Run: func(cmd *cobra.Command, args []string) {
		refs, err := workload.GenerateReferenceString(genConfig)
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), sim.FormatReferenceString(refs))
	},
}

func init() {
	generateCmd.Flags().IntVar(&genConfig.Length, "length", 20, "Number of accesses")
	generateCmd.Flags().IntVar(&genConfig.Pages, "pages", 10, "Pages are drawn from [0, pages)")
	generateCmd.Flags().IntVar(&genConfig.Locality, "locality", 0, "Working-set size (0 = uniform)")
	generateCmd.Flags().Int64Var(&genConfig.Seed, "seed", 42, "Seed for reference string generation")

	rootCmd.AddCommand(generateCmd)
}
