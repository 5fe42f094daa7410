package cmd

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim"
)

const batchLines = `# classic strings
1,2,3,4,1,2,5,1,2,3,4,5
no pages here
7 0 1 2 0 3 0 4 2 3 0 3 2 1 2 0 1 7 0 1
`

func writeBatchFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunBatch_TextReport(t *testing.T) {
	// GIVEN a line file with one string that has no page numbers
	path := writeBatchFile(t, "refs.txt", batchLines)
	var out bytes.Buffer

	// WHEN the batch is run on 3 frames
	require.NoError(t, runBatch(&out, path, 3, true, "", "text"))

	// THEN the unusable line is counted as skipped and the rest are reported
	output := out.String()
	assert.Contains(t, output, "compared: 2, skipped: 1")
	assert.Contains(t, output, "MEAN FAULTS")
}

func TestRunBatch_JSONReport(t *testing.T) {
	path := writeBatchFile(t, "refs.txt", batchLines)
	var out bytes.Buffer
	require.NoError(t, runBatch(&out, path, 3, true, "", "json"))

	var report batchReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.Len(t, report.Entries, 2)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, sim.ComparisonResult{"fifo": 9, "lru": 10, "optimal": 7}, report.Entries[0].Result)
	assert.Equal(t, sim.ComparisonResult{"fifo": 15, "lru": 12, "optimal": 9}, report.Entries[1].Result)
	assert.Equal(t, 2, report.Summary["optimal"].TimesBest)
}

func TestRunBatch_SpecFramesUnlessFlagChanged(t *testing.T) {
	spec := `version: "1"
frames: 4
references:
  - name: belady
    pages: "1 2 3 4 1 2 5 1 2 3 4 5"
`
	path := writeBatchFile(t, "workload.yaml", spec)

	// The spec's frame count applies when --frames was not given.
	var out bytes.Buffer
	require.NoError(t, runBatch(&out, path, 3, false, "", "json"))
	var report batchReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 4, report.Frames)
	assert.Equal(t, 10, report.Entries[0].Result["fifo"])

	// An explicit --frames overrides it.
	out.Reset()
	require.NoError(t, runBatch(&out, path, 3, true, "", "json"))
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 3, report.Frames)
	assert.Equal(t, 9, report.Entries[0].Result["fifo"])
}

func TestRunBatch_RecordsToSQLite(t *testing.T) {
	path := writeBatchFile(t, "refs.txt", batchLines)
	dbPath := filepath.Join(t.TempDir(), "results.sqlite3")

	require.NoError(t, runBatch(&bytes.Buffer{}, path, 3, true, dbPath, "text"))

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM comparisons").Scan(&count))
	assert.Equal(t, 6, count) // 2 entries x 3 policies
}

func TestRunBatch_Errors(t *testing.T) {
	path := writeBatchFile(t, "refs.txt", batchLines)
	assert.Error(t, runBatch(&bytes.Buffer{}, path, 3, true, "", "xml"))
	assert.Error(t, runBatch(&bytes.Buffer{}, path, 0, true, "", "text"))
	assert.Error(t, runBatch(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.txt"), 3, true, "", "text"))
}
