package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim"
	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/custom"
	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/record"
	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/trace"
)

func TestBuildPolicy_BuiltinNames(t *testing.T) {
	for _, name := range sim.BuiltinPolicyNames() {
		t.Run(name, func(t *testing.T) {
			p, err := buildPolicy(name, "", "")
			require.NoError(t, err)
			assert.Equal(t, name, p.Name())
		})
	}
}

func TestBuildPolicy_Custom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lru.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: my-lru\nscore: age\n"), 0o644))

	tests := []struct {
		name     string
		path     string
		score    string
		wantName string
		wantErr  bool
	}{
		{name: "inline score", score: "age", wantName: sim.PolicyCustom},
		{name: "policy file", path: path, wantName: "my-lru"},
		{name: "both given", path: path, score: "age", wantErr: true},
		{name: "neither given", wantErr: true},
		{name: "bad expression", score: "age +", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := buildPolicy(sim.PolicyCustom, tc.path, tc.score)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, p.Name())
		})
	}
}

func TestBuildPolicy_UnknownName_ReturnsError(t *testing.T) {
	_, err := buildPolicy("clock", "", "")
	assert.ErrorContains(t, err, "unknown policy")
}

func TestRunSimulation_ReportWrittenToCommandOutput(t *testing.T) {
	// GIVEN the textbook reference string on 3 frames under LRU
	refs, err := sim.ParseReferenceString("7 0 1 2 0 3 0 4 2 3 0 3 2 1 2 0 1 7 0 1")
	require.NoError(t, err)
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	// WHEN the run completes with step tracing
	err = runSimulation(cmd, runOptions{
		Refs:       refs,
		Frames:     3,
		Policy:     sim.NewPolicy(sim.PolicyLRU),
		TraceLevel: trace.TraceLevelSteps,
	})
	require.NoError(t, err)

	// THEN the report names the policy, lists every step and ends with the fault total
	output := out.String()
	assert.Contains(t, output, "Algorithm: LRU")
	assert.Contains(t, output, "t=0 page=7 frames=[7 - -] fault")
	assert.Contains(t, output, "Total Page Faults: 12")
	assert.Contains(t, output, "Hits: 8 / 20 (40.00%)")
}

func TestRunSimulation_TraceNone_OmitsSteps(t *testing.T) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	err := runSimulation(cmd, runOptions{
		Refs:       []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5},
		Frames:     3,
		Policy:     sim.NewPolicy(sim.PolicyFIFO),
		TraceLevel: trace.TraceLevelNone,
	})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "t=0")
	assert.Contains(t, out.String(), "Total Page Faults: 9")
}

func TestRunSimulation_ExportsCSVAndRecord(t *testing.T) {
	// GIVEN a custom policy and output paths for both the CSV trace and the compressed record
	dir := t.TempDir()
	csvFile := filepath.Join(dir, "trace.csv")
	saveFile := filepath.Join(dir, "run.json.sz")
	policy, err := custom.Compile("", "next_use")
	require.NoError(t, err)
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	// WHEN the run completes
	err = runSimulation(cmd, runOptions{
		Refs:       []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5},
		Frames:     3,
		Policy:     policy,
		TraceLevel: trace.TraceLevelNone,
		CSVPath:    csvFile,
		SavePath:   saveFile,
	})
	require.NoError(t, err)

	// THEN both files reflect the optimal fault count and the record keeps the score source
	tr, err := trace.LoadCSV(csvFile)
	require.NoError(t, err)
	assert.Equal(t, 7, tr.Faults())

	rec, err := record.Load(saveFile)
	require.NoError(t, err)
	assert.Equal(t, 7, rec.Faults)
	assert.Equal(t, "next_use", rec.CustomSource)
}

func TestRunSimulation_InvalidFrames_ReturnsError(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	err := runSimulation(cmd, runOptions{Refs: []int{1}, Frames: 0, Policy: sim.NewPolicy(sim.PolicyFIFO)})
	assert.ErrorIs(t, err, sim.ErrInvalidInput)
}

func TestLoadDotEnv_MissingFile_NotAnError(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestApplyEnvDefaults_SetsUnchangedFlagsOnly(t *testing.T) {
	// GIVEN PAGESIM_FRAMES in the environment
	t.Setenv("PAGESIM_FRAMES", "5")
	var refs, preset string
	var n int

	// WHEN the flag was not passed
	cmd := &cobra.Command{}
	addInputFlags(cmd, &refs, &preset, &n)
	applyEnvDefaults(cmd)

	// THEN the environment value is applied and counts as explicit
	assert.Equal(t, 5, n)
	assert.True(t, cmd.Flags().Changed("frames"))

	// WHEN the flag was passed
	cmd = &cobra.Command{}
	addInputFlags(cmd, &refs, &preset, &n)
	require.NoError(t, cmd.Flags().Set("frames", "2"))
	applyEnvDefaults(cmd)

	// THEN the flag wins
	assert.Equal(t, 2, n)
}
