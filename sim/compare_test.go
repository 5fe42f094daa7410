package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_Belady(t *testing.T) {
	result, err := Compare(beladyString, 3)
	require.NoError(t, err)
	assert.Equal(t, ComparisonResult{PolicyFIFO: 9, PolicyLRU: 10, PolicyOptimal: 7}, result)
	assert.Equal(t, []string{PolicyOptimal}, result.Best())
}

func TestCompare_CalledTwice_Identical(t *testing.T) {
	first, err := Compare(beladyString, 4)
	require.NoError(t, err)
	second, err := Compare(beladyString, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompare_InvalidInput(t *testing.T) {
	_, err := Compare(nil, 3)
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
}

func TestCompare_OptimalNeverWorse(t *testing.T) {
	// GIVEN random reference strings over small page sets
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		refs := make([]int, 1+rng.Intn(60))
		pages := 1 + rng.Intn(9)
		for j := range refs {
			refs[j] = rng.Intn(pages)
		}
		frames := 1 + rng.Intn(5)

		// WHEN compared
		result, err := Compare(refs, frames)
		require.NoError(t, err)

		// THEN Optimal is a lower bound on the other policies
		assert.LessOrEqual(t, result[PolicyOptimal], result[PolicyFIFO], "refs=%v frames=%d", refs, frames)
		assert.LessOrEqual(t, result[PolicyOptimal], result[PolicyLRU], "refs=%v frames=%d", refs, frames)
	}
}

func TestComparisonResult_Best_Ties(t *testing.T) {
	result := ComparisonResult{PolicyFIFO: 3, PolicyLRU: 3, PolicyOptimal: 3}
	assert.Equal(t, []string{PolicyFIFO, PolicyLRU, PolicyOptimal}, result.Best())
	assert.Nil(t, ComparisonResult{}.Best())
}

func TestBatchCompare_SkipsMalformedAndPreservesOrder(t *testing.T) {
	// GIVEN a batch with an all-garbage string in the middle
	inputs := []string{
		"1,2,3,4,1,2,5,1,2,3,4,5",
		"a, b, c",
		"7 x 7 7",
		"",
	}

	// WHEN compared with three frames
	entries, err := BatchCompare(inputs, 3)
	require.NoError(t, err)

	// THEN the malformed and empty strings are skipped, order is kept
	require.Len(t, entries, 2)
	assert.Equal(t, 0, entries[0].Index)
	assert.Equal(t, 9, entries[0].Result[PolicyFIFO])
	assert.Equal(t, 2, entries[1].Index)
	assert.Equal(t, []int{7, 7, 7}, entries[1].Reference)
	assert.Equal(t, ComparisonResult{PolicyFIFO: 1, PolicyLRU: 1, PolicyOptimal: 1}, entries[1].Result)
}

func TestBatchCompare_InvalidFrames_FailsBatch(t *testing.T) {
	entries, err := BatchCompare([]string{"1,2"}, 0)
	assert.Nil(t, entries)
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
}

func TestSummarizeBatch(t *testing.T) {
	entries := []BatchEntry{
		{Reference: make([]int, 10), Result: ComparisonResult{PolicyFIFO: 4, PolicyLRU: 5, PolicyOptimal: 3}},
		{Reference: make([]int, 10), Result: ComparisonResult{PolicyFIFO: 6, PolicyLRU: 5, PolicyOptimal: 5}},
	}

	summary := SummarizeBatch(entries)

	fifo := summary[PolicyFIFO]
	assert.Equal(t, 2, fifo.Runs)
	assert.InDelta(t, 5.0, fifo.MeanFaults, 1e-9)
	assert.InDelta(t, 1.4142135, fifo.StdDevFaults, 1e-6)
	assert.InDelta(t, 0.5, fifo.MeanFaultRate, 1e-9)
	assert.Equal(t, 0, fifo.TimesBest)
	assert.Equal(t, 1, summary[PolicyLRU].TimesBest)
	assert.Equal(t, 2, summary[PolicyOptimal].TimesBest)
	assert.InDelta(t, 0.0, summary[PolicyLRU].StdDevFaults, 1e-9)
}

func TestSummarizeBatch_SingleEntry_ZeroStdDev(t *testing.T) {
	summary := SummarizeBatch([]BatchEntry{
		{Reference: []int{1, 2}, Result: ComparisonResult{PolicyFIFO: 2, PolicyLRU: 2, PolicyOptimal: 2}},
	})
	assert.Equal(t, 0.0, summary[PolicyFIFO].StdDevFaults)
	assert.Empty(t, SummarizeBatch(nil))
}
