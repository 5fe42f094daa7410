package workload

import (
	"fmt"
	"math/rand"
)

// GeneratorConfig parameterizes a generated reference string.
type GeneratorConfig struct {
	Length   int   // number of accesses
	Pages    int   // pages are drawn from [0, Pages)
	Locality int   // working-set size; 0 = uniform over all pages
	Seed     int64 // same seed, same string
}

// localityJumpProbability is the chance that the working set moves on each access.
const localityJumpProbability = 0.1

// Validate checks the generator parameters.
func (c GeneratorConfig) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("length must be positive, got %d", c.Length)
	}
	if c.Pages <= 0 {
		return fmt.Errorf("pages must be positive, got %d", c.Pages)
	}
	if c.Locality < 0 || c.Locality > c.Pages {
		return fmt.Errorf("locality must be in [0, %d], got %d", c.Pages, c.Locality)
	}
	return nil
}

// GenerateReferenceString draws a reference string. With Locality > 0 accesses
// fall inside a window of Locality consecutive pages that occasionally jumps,
// which gives LRU something to exploit.
func GenerateReferenceString(c GeneratorConfig) ([]int, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rng := newRandFromSeed(c.Seed)
	refs := make([]int, c.Length)
	if c.Locality == 0 {
		for i := range refs {
			refs[i] = rng.Intn(c.Pages)
		}
		return refs, nil
	}
	base := rng.Intn(c.Pages - c.Locality + 1)
	for i := range refs {
		if rng.Float64() < localityJumpProbability {
			base = rng.Intn(c.Pages - c.Locality + 1)
		}
		refs[i] = base + rng.Intn(c.Locality)
	}
	return refs, nil
}

func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
