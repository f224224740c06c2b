package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonCodeLinesSkipsFences(t *testing.T) {
	lines := []string{
		"prose",
		"```go",
		"code",
		"```",
		"more prose",
	}

	var seen []int
	NonCodeLines(lines, func(num int, _ string) {
		seen = append(seen, num)
	})

	assert.Equal(t, []int{1, 5}, seen)
}

func TestNonCodeLinesIndentedFence(t *testing.T) {
	lines := []string{
		"  ```",
		"hidden",
		"  ```",
		"visible",
	}

	var seen []string
	NonCodeLines(lines, func(_ int, line string) {
		seen = append(seen, line)
	})

	assert.Equal(t, []string{"visible"}, seen)
}

func TestIsDirectiveLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Do the thing.", true},
		{"- try to keep it short", true},
		{"    indented code", false},
		{"    - indented list item", true},
		{"> quoted text", false},
		{"| cell | cell |", false},
		{"", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDirectiveLine(tt.line), "IsDirectiveLine(%q)", tt.line)
	}
}
