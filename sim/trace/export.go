package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSV column headers for exported traces.
var csvColumns = []string{"time", "page", "fault", "evicted", "frames"}

// frameSeparator joins frame slots inside the frames column.
const frameSeparator = "|"

// WriteCSV writes the trace as CSV. Empty slots are written as "-" inside the
// frames column and as an empty cell in the evicted column.
func WriteCSV(w io.Writer, t Trace) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range t {
		frames := make([]string, len(r.Frames))
		for i, s := range r.Frames {
			frames[i] = s.String()
		}
		evicted := ""
		if r.Evicted.Occupied {
			evicted = strconv.Itoa(r.Evicted.Page)
		}
		row := []string{
			strconv.Itoa(r.Time),
			strconv.Itoa(r.Page),
			strconv.FormatBool(r.Fault),
			evicted,
			strings.Join(frames, frameSeparator),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", r.Time, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportCSV writes the trace to a CSV file at path.
func ExportCSV(t Trace, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return WriteCSV(file, t)
}

// ReadCSV reads a trace written by WriteCSV.
func ReadCSV(r io.Reader) (Trace, error) {
	reader := csv.NewReader(r)

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	var t Trace
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		if len(row) < len(csvColumns) {
			return nil, fmt.Errorf("CSV row has %d columns, expected %d", len(row), len(csvColumns))
		}
		rec, err := parseStepRecord(row)
		if err != nil {
			return nil, err
		}
		t = append(t, rec)
	}
	return t, nil
}

// LoadCSV reads a trace CSV file from path.
func LoadCSV(path string) (Trace, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return ReadCSV(file)
}

func parseStepRecord(row []string) (StepRecord, error) {
	var rec StepRecord
	var err error
	if rec.Time, err = strconv.Atoi(row[0]); err != nil {
		return rec, fmt.Errorf("parsing time %q: %w", row[0], err)
	}
	if rec.Page, err = strconv.Atoi(row[1]); err != nil {
		return rec, fmt.Errorf("row %d: parsing page %q: %w", rec.Time, row[1], err)
	}
	if rec.Fault, err = strconv.ParseBool(row[2]); err != nil {
		return rec, fmt.Errorf("row %d: parsing fault %q: %w", rec.Time, row[2], err)
	}
	if row[3] != "" {
		victim, err := strconv.Atoi(row[3])
		if err != nil {
			return rec, fmt.Errorf("row %d: parsing evicted %q: %w", rec.Time, row[3], err)
		}
		rec.Evicted = PageSlot(victim)
	}
	for _, cell := range strings.Split(row[4], frameSeparator) {
		if cell == "-" {
			rec.Frames = append(rec.Frames, EmptySlot())
			continue
		}
		page, err := strconv.Atoi(cell)
		if err != nil {
			return rec, fmt.Errorf("row %d: parsing frame %q: %w", rec.Time, cell, err)
		}
		rec.Frames = append(rec.Frames, PageSlot(page))
	}
	return rec, nil
}
