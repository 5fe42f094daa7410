// Package record saves simulation results: single runs as JSON result records
// (optionally compressed) and batch comparisons as rows in a SQLite database.
package record

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
	"github.com/rs/xid"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim"
	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim/trace"
)

// Compression selects the framing of a saved record.
type Compression string

const (
	CompressionNone   Compression = "none"
	CompressionSnappy Compression = "snappy"
	CompressionLZ4    Compression = "lz4"
)

// CompressionFor picks the compression from the file extension:
// ".sz" for snappy, ".lz4" for LZ4, anything else uncompressed.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sz", ".snappy":
		return CompressionSnappy
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// ResultRecord is the saved form of one simulation run.
type ResultRecord struct {
	RunID        string      `json:"run_id"`
	CreatedAt    time.Time   `json:"created_at"`
	Policy       string      `json:"policy"`
	CustomSource string      `json:"custom_source,omitempty"` // score expression of a custom policy
	Frames       int         `json:"frames"`
	Reference    []int       `json:"reference"`
	Faults       int         `json:"faults"`
	Trace        trace.Trace `json:"trace"`
}

// NewResultRecord wraps a result with a fresh run ID.
func NewResultRecord(res *sim.SimulationResult) *ResultRecord {
	return &ResultRecord{
		RunID:     xid.New().String(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Policy:    res.Policy,
		Frames:    res.Frames,
		Reference: res.Trace.Pages(),
		Faults:    res.Faults,
		Trace:     res.Trace,
	}
}

// Validate checks that the record is internally consistent.
func (r *ResultRecord) Validate() error {
	if len(r.Trace) != len(r.Reference) {
		return fmt.Errorf("trace has %d steps for %d references", len(r.Trace), len(r.Reference))
	}
	if got := r.Trace.Faults(); got != r.Faults {
		return fmt.Errorf("record claims %d faults, trace has %d", r.Faults, got)
	}
	for _, step := range r.Trace {
		if len(step.Frames) != r.Frames {
			return fmt.Errorf("step %d has %d frames, want %d", step.Time, len(step.Frames), r.Frames)
		}
	}
	return nil
}

// Write encodes the record as JSON with the given compression.
func Write(w io.Writer, rec *ResultRecord, c Compression) error {
	var (
		out    io.Writer = w
		closer io.Closer
	)
	switch c {
	case CompressionNone, "":
	case CompressionSnappy:
		sw := snappy.NewBufferedWriter(w)
		out, closer = sw, sw
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		out, closer = lw, lw
	default:
		return fmt.Errorf("unsupported compression %q", c)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rec); err != nil {
		return fmt.Errorf("encoding result record: %w", err)
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("flushing %s stream: %w", c, err)
		}
	}
	return nil
}

// Read decodes a record written by Write with the same compression.
func Read(r io.Reader, c Compression) (*ResultRecord, error) {
	var in io.Reader
	switch c {
	case CompressionNone, "":
		in = r
	case CompressionSnappy:
		in = snappy.NewReader(r)
	case CompressionLZ4:
		in = lz4.NewReader(r)
	default:
		return nil, fmt.Errorf("unsupported compression %q", c)
	}
	var rec ResultRecord
	if err := json.NewDecoder(in).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decoding result record: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid result record: %w", err)
	}
	return &rec, nil
}

// Save writes the record to path, compressed according to its extension.
func Save(rec *ResultRecord, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating result record: %w", err)
	}
	if err := Write(file, rec, CompressionFor(path)); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Load reads a record saved by Save.
func Load(path string) (*ResultRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening result record: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Read(file, CompressionFor(path))
}
