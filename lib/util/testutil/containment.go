package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertInOrder asserts that each needle appears in haystack, in the given
// order, without overlapping the previous match. It returns the offset just
// past the last match, or -1 if the sequence was not matched.
func AssertInOrder(t *testing.T, haystack string, needles ...string) int {
	t.Helper()
	offset := 0
	for i, needle := range needles {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			assert.Fail(t, fmt.Sprintf("Output does not contain expected sequence:\n  missing[%d]: %q\n  after offset %d of %d", i, needle, offset, len(haystack)))
			return -1
		}
		offset += idx + len(needle)
	}
	return offset
}

// CountOccurrences counts the non-overlapping instances of each needle
func CountOccurrences(haystack string, needles ...string) map[string]int {
	out := make(map[string]int, len(needles))
	for _, needle := range needles {
		out[needle] = strings.Count(haystack, needle)
	}
	return out
}
