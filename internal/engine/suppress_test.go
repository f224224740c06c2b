package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/doclint/pkg/docs"
)

func suppressionsFor(comments []docs.SuppressComment, totalLines int) map[string][]suppressedRange {
	return map[string][]suppressedRange{"test.md": buildRanges(comments, totalLines)}
}

func TestDisableNextLine(t *testing.T) {
	set := suppressionsFor([]docs.SuppressComment{
		{Line: 5, Kind: docs.SuppressNextLine, Rule: "naming-inconsistency"},
	}, 20)

	assert.True(t, isSuppressed(set, "test.md", 6, "naming-inconsistency"))
	assert.False(t, isSuppressed(set, "test.md", 7, "naming-inconsistency"))
	assert.False(t, isSuppressed(set, "test.md", 6, "vague-directive"))
}

func TestDisableEnableBlock(t *testing.T) {
	set := suppressionsFor([]docs.SuppressComment{
		{Line: 3, Kind: docs.SuppressDisable},
		{Line: 8, Kind: docs.SuppressEnable},
	}, 20)

	assert.True(t, isSuppressed(set, "test.md", 5, "naming-inconsistency"))
	assert.True(t, isSuppressed(set, "test.md", 5, "vague-directive"))
	assert.False(t, isSuppressed(set, "test.md", 9, "naming-inconsistency"))
}

func TestRuleSpecificBlockLeavesOtherRules(t *testing.T) {
	set := suppressionsFor([]docs.SuppressComment{
		{Line: 3, Kind: docs.SuppressDisable, Rule: "enum-drift"},
		{Line: 8, Kind: docs.SuppressEnable, Rule: "enum-drift"},
	}, 20)

	assert.True(t, isSuppressed(set, "test.md", 5, "enum-drift"))
	assert.False(t, isSuppressed(set, "test.md", 5, "vague-directive"))
	assert.False(t, isSuppressed(set, "test.md", 9, "enum-drift"))
}

func TestUnclosedDisableExtendsToEOF(t *testing.T) {
	ranges := buildRanges([]docs.SuppressComment{
		{Line: 10, Kind: docs.SuppressDisable, Rule: "vague-directive"},
	}, 30)

	require.Len(t, ranges, 1)
	assert.Equal(t, 10, ranges[0].start)
	assert.Equal(t, 30, ranges[0].end)
}

func TestEnableWithoutDisableIgnored(t *testing.T) {
	ranges := buildRanges([]docs.SuppressComment{
		{Line: 10, Kind: docs.SuppressEnable},
	}, 20)
	assert.Empty(t, ranges)
}

func TestNestedDisableBlocks(t *testing.T) {
	ranges := buildRanges([]docs.SuppressComment{
		{Line: 3, Kind: docs.SuppressDisable},
		{Line: 5, Kind: docs.SuppressDisable},
		{Line: 8, Kind: docs.SuppressEnable},
	}, 20)

	// Inner disable closes at line 8; the outer one runs to EOF.
	require.Len(t, ranges, 2)
	assert.Equal(t, suppressedRange{start: 5, end: 8}, ranges[0])
	assert.Equal(t, suppressedRange{start: 3, end: 20}, ranges[1])
}

func TestEnableMatchesSameRuleOnly(t *testing.T) {
	set := suppressionsFor([]docs.SuppressComment{
		{Line: 3, Kind: docs.SuppressDisable},
		{Line: 5, Kind: docs.SuppressDisable, Rule: "enum-drift"},
		{Line: 8, Kind: docs.SuppressEnable},
	}, 20)

	// The bare enable closes the bare disable; the enum-drift block stays
	// open to EOF.
	assert.False(t, isSuppressed(set, "test.md", 10, "vague-directive"))
	assert.True(t, isSuppressed(set, "test.md", 10, "enum-drift"))
	assert.True(t, isSuppressed(set, "test.md", 4, "vague-directive"))
}

func TestConsecutiveDisableNextLine(t *testing.T) {
	set := suppressionsFor([]docs.SuppressComment{
		{Line: 5, Kind: docs.SuppressNextLine, Rule: "enum-drift"},
		{Line: 7, Kind: docs.SuppressNextLine, Rule: "vague-directive"},
	}, 20)

	assert.True(t, isSuppressed(set, "test.md", 6, "enum-drift"))
	assert.False(t, isSuppressed(set, "test.md", 6, "vague-directive"))
	assert.True(t, isSuppressed(set, "test.md", 8, "vague-directive"))
	assert.False(t, isSuppressed(set, "test.md", 8, "enum-drift"))
}

func TestUnknownDocumentNeverSuppressed(t *testing.T) {
	assert.False(t, isSuppressed(map[string][]suppressedRange{}, "unknown.md", 5, "enum-drift"))
}
