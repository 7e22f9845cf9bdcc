package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "single line",
			input:    "Harvard Law School",
			expected: []string{"Harvard Law School"},
		},
		{
			name:     "multiple lines with blanks",
			input:    "Mergers\n\n  Acquisitions  \n",
			expected: []string{"Mergers", "Acquisitions"},
		},
		{
			name:     "windows line endings",
			input:    "First\r\nSecond",
			expected: []string{"First", "Second"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SplitLines(tc.input))
		})
	}
}

func TestSplitComma(t *testing.T) {
	assert.Equal(t, []string{"law", "mergers", "tax"}, SplitComma("law, mergers , tax"))
	assert.Equal(t, []string{}, SplitComma(""))
	assert.Equal(t, []string{"solo"}, SplitComma("solo,,"))
}

func TestJoinRoundTrip(t *testing.T) {
	items := []string{"First entry", "Second entry"}

	assert.Equal(t, items, SplitLines(JoinLines(items)))
	assert.Equal(t, items, SplitComma(JoinComma(items)))
}
