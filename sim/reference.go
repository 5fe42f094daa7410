package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// splitTokens splits a reference string on commas and whitespace.
func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// ParseReferenceString parses a comma- or whitespace-separated list of page
// numbers. Any non-numeric token, or an empty list, is an ErrInvalidInput.
func ParseReferenceString(s string) ([]int, error) {
	tokens := splitTokens(s)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: reference string is empty", ErrInvalidInput)
	}
	refs := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		page, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q is not a page number", ErrInvalidInput, i, tok)
		}
		refs = append(refs, page)
	}
	return refs, nil
}

// FilterReferenceString parses s like ParseReferenceString but drops
// non-numeric tokens instead of failing. The result may be empty.
func FilterReferenceString(s string) []int {
	var refs []int
	for _, tok := range splitTokens(s) {
		if page, err := strconv.Atoi(tok); err == nil {
			refs = append(refs, page)
		}
	}
	return refs
}

// FormatReferenceString renders refs as "1,2,3".
func FormatReferenceString(refs []int) string {
	parts := make([]string, len(refs))
	for i, p := range refs {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}
