// Package workload loads and generates the reference strings fed to batch comparisons.
package workload

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim"
)

// WorkloadSpec is the top-level batch configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	Version    string          `yaml:"version"`
	Frames     int             `yaml:"frames,omitempty"` // 0 = use the CLI value
	Seed       int64           `yaml:"seed"`
	References []ReferenceSpec `yaml:"references"`
	Generate   []GeneratorSpec `yaml:"generate,omitempty"`
}

// ReferenceSpec is one literal reference string.
type ReferenceSpec struct {
	Name  string `yaml:"name"`
	Pages string `yaml:"pages"` // comma- or space-separated page numbers
}

// GeneratorSpec asks for Count generated reference strings.
type GeneratorSpec struct {
	Name     string `yaml:"name"`
	Count    int    `yaml:"count"`
	Length   int    `yaml:"length"`
	Pages    int    `yaml:"pages"`
	Locality int    `yaml:"locality,omitempty"` // working-set size; 0 = uniform
}

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	if spec.Version == "" {
		spec.Version = "1"
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid. Literal reference
// strings are not checked here: malformed ones are skipped by the batch runner.
func (s *WorkloadSpec) Validate() error {
	if s.Version != "1" {
		return fmt.Errorf("unsupported workload version %q; valid: 1", s.Version)
	}
	if s.Frames < 0 {
		return fmt.Errorf("frames must be non-negative, got %d", s.Frames)
	}
	if len(s.References) == 0 && len(s.Generate) == 0 {
		return fmt.Errorf("at least one reference or generate entry required")
	}
	for i, g := range s.Generate {
		prefix := fmt.Sprintf("generate[%d]", i)
		if g.Count <= 0 {
			return fmt.Errorf("%s: count must be positive, got %d", prefix, g.Count)
		}
		if err := g.config(0).Validate(); err != nil {
			return fmt.Errorf("%s: %w", prefix, err)
		}
	}
	return nil
}

func (g GeneratorSpec) config(seed int64) GeneratorConfig {
	return GeneratorConfig{Length: g.Length, Pages: g.Pages, Locality: g.Locality, Seed: seed}
}

// NamedInput is one raw reference string of a batch, before parsing.
type NamedInput struct {
	Name  string
	Pages string
}

// Inputs expands the spec into raw reference strings: literal references
// first, then generated ones. Generation is deterministic given Seed.
func (s *WorkloadSpec) Inputs() ([]NamedInput, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	var inputs []NamedInput
	for i, r := range s.References {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("reference-%d", i)
		}
		inputs = append(inputs, NamedInput{Name: name, Pages: r.Pages})
	}
	rng := newRandFromSeed(s.Seed)
	for _, g := range s.Generate {
		for j := 0; j < g.Count; j++ {
			refs, err := GenerateReferenceString(g.config(rng.Int63()))
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, NamedInput{
				Name:  fmt.Sprintf("%s-%d", g.Name, j),
				Pages: sim.FormatReferenceString(refs),
			})
		}
	}
	return inputs, nil
}

// ReadLines reads one raw reference string per line, skipping blank lines
// and lines starting with '#'.
func ReadLines(r io.Reader) ([]NamedInput, error) {
	var inputs []NamedInput
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		inputs = append(inputs, NamedInput{Name: fmt.Sprintf("line-%d", line), Pages: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading reference strings: %w", err)
	}
	return inputs, nil
}

// LoadInputs reads a batch input file. Files ending in .yaml or .yml are
// workload specs; anything else is one reference string per line. The
// returned frame count is the spec's, or 0 when the file does not set one.
func LoadInputs(path string) ([]NamedInput, int, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		spec, err := LoadWorkloadSpec(path)
		if err != nil {
			return nil, 0, err
		}
		inputs, err := spec.Inputs()
		if err != nil {
			return nil, 0, err
		}
		return inputs, spec.Frames, nil
	default:
		file, err := os.Open(path)
		if err != nil {
			return nil, 0, fmt.Errorf("opening reference strings: %w", err)
		}
		defer func() { _ = file.Close() }()
		inputs, err := ReadLines(file)
		return inputs, 0, err
	}
}
