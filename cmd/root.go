package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim"
	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/custom"
	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/record"
	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/trace"
)

var (
	// Flags shared by every command
	logLevel     string // Log verbosity level
	defaultsPath string // Path to defaults.yaml

	// CLI flags for run
	refsArg          string // Reference string, e.g. "1,2,3,4"
	presetName       string // Named reference string from defaults.yaml
	frames           int    // Number of frames
	policyName       string // fifo, lru, optimal or custom
	customPolicyPath string // YAML file holding a custom score expression
	customScore      string // Inline custom score expression
	traceLevel       string // none or steps
	csvPath          string // Export the trace as CSV
	savePath         string // Save the result record (.json, .json.sz, .json.lz4)
)

// envFlags maps persistent and per-command flags to environment variables,
// which may also come from a .env file in the working directory.
var envFlags = map[string]string{
	"log":      "PAGESIM_LOG",
	"defaults": "PAGESIM_DEFAULTS",
	"frames":   "PAGESIM_FRAMES",
}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pagesim",
	Short: "Page-replacement policy simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := loadDotEnv(".env"); err != nil {
			logrus.Fatalf("Failed to load .env: %v", err)
		}
		applyEnvDefaults(cmd)

		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// loadDotEnv loads path into the environment. A missing file is not an error;
// variables already set in the environment win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// applyEnvDefaults sets flags the user did not pass from their environment variables.
func applyEnvDefaults(cmd *cobra.Command) {
	for name, env := range envFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if v, ok := os.LookupEnv(env); ok {
			if err := cmd.Flags().Set(name, v); err != nil {
				logrus.Fatalf("Invalid %s=%q: %v", env, v, err)
			}
		}
	}
}

// runOptions is the resolved input of one simulation run.
type runOptions struct {
	Refs       []int
	Frames     int
	Policy     sim.Policy
	TraceLevel trace.TraceLevel
	CSVPath    string
	SavePath   string
}

// buildPolicy resolves the --policy flag, compiling a custom policy when asked to.
func buildPolicy(name, policyPath, score string) (sim.Policy, error) {
	switch {
	case sim.IsValidPolicyName(name):
		return sim.NewPolicy(name), nil
	case name == sim.PolicyCustom:
		if policyPath != "" && score != "" {
			return nil, fmt.Errorf("use either --custom-policy or --custom-score, not both")
		}
		if policyPath != "" {
			return custom.LoadPolicyFile(policyPath)
		}
		if score != "" {
			return custom.Compile(sim.PolicyCustom, score)
		}
		return nil, fmt.Errorf("--policy custom needs --custom-policy or --custom-score")
	default:
		return nil, fmt.Errorf("unknown policy %q; valid policies: [fifo, lru, optimal, custom]", name)
	}
}

// runSimulation executes one run and writes its report to stdout.
func runSimulation(cmd *cobra.Command, opts runOptions) error {
	res, err := sim.Simulate(opts.Refs, opts.Frames, opts.Policy)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res, opts.TraceLevel)

	if opts.CSVPath != "" {
		if err := trace.ExportCSV(res.Trace, opts.CSVPath); err != nil {
			return err
		}
		logrus.Infof("Trace written to %s", opts.CSVPath)
	}
	if opts.SavePath != "" {
		rec := record.NewResultRecord(res)
		if cp, ok := opts.Policy.(*custom.Policy); ok {
			rec.CustomSource = cp.Source()
		}
		if err := record.Save(rec, opts.SavePath); err != nil {
			return err
		}
		logrus.Infof("Result record %s saved to %s", rec.RunID, opts.SavePath)
	}
	return nil
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one policy over a reference string",
	Run: func(cmd *cobra.Command, args []string) {
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q; valid: none, steps", traceLevel)
		}
		refs, nFrames, err := resolveInput(cmd, refsArg, presetName, frames)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		policy, err := buildPolicy(policyName, customPolicyPath, customScore)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Starting simulation: policy=%s, frames=%d, %d references", policy.Name(), nFrames, len(refs))
		err = runSimulation(cmd, runOptions{
			Refs:       refs,
			Frames:     nFrames,
			Policy:     policy,
			TraceLevel: trace.TraceLevel(traceLevel),
			CSVPath:    csvPath,
			SavePath:   savePath,
		})
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	// Fatal logs exit through atexit so registered flushes still run.
	logrus.StandardLogger().ExitFunc = atexit.Exit
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// addInputFlags registers the flags that select a reference string and frame count.
func addInputFlags(cmd *cobra.Command, refs, preset *string, nFrames *int) {
	cmd.Flags().StringVar(refs, "refs", "", "Reference string: comma- or space-separated page numbers")
	cmd.Flags().StringVar(preset, "preset", "", "Named reference string from the defaults file")
	cmd.Flags().IntVar(nFrames, "frames", 3, "Number of page frames")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&defaultsPath, "defaults", defaultDefaultsPath, "Path to the defaults file with presets")

	addInputFlags(runCmd, &refsArg, &presetName, &frames)
	runCmd.Flags().StringVar(&policyName, "policy", sim.PolicyFIFO, "Replacement policy (fifo, lru, optimal, custom)")
	runCmd.Flags().StringVar(&customPolicyPath, "custom-policy", "", "YAML file with a custom score expression (implies nothing unless --policy custom)")
	runCmd.Flags().StringVar(&customScore, "custom-score", "", "Inline custom score expression, e.g. \"age\" for LRU")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelSteps), "Report detail (none, steps)")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Write the trace to this CSV file")
	runCmd.Flags().StringVar(&savePath, "save", "", "Save the result record (.json, .json.sz for snappy, .json.lz4 for LZ4)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
