package custom

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicyFile is the YAML form of a custom policy.
//
//	name: lru-unless-dead
//	description: evict pages that never come back, otherwise the least recently used
//	score: "reused ? age : 1000000"
type PolicyFile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Score       string `yaml:"score"`
}

// LoadPolicyFile reads and compiles a custom policy file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadPolicyFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading custom policy: %w", err)
	}
	var pf PolicyFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&pf); err != nil {
		return nil, fmt.Errorf("parsing custom policy %s: %w", path, err)
	}
	return Compile(pf.Name, pf.Score)
}
