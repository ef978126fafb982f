package scheduler

import (
	"testing"
	"time"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wib(day, hour, minute int) time.Time {
	return time.Date(2025, time.September, day, hour, minute, 0, 0, utils.TimezoneWIB)
}

func TestMergeIntervals_EmptyInput(t *testing.T) {
	merged := MergeIntervals(nil)

	require.NotNil(t, merged)
	assert.Empty(t, merged)
}

func TestMergeIntervals_CoalescesOverlapping(t *testing.T) {
	input := []Interval{
		{Start: wib(10, 13, 0), End: wib(10, 14, 0), Source: "calendar:rapat"},
		{Start: wib(10, 13, 30), End: wib(10, 15, 0), Source: "schedule:belajar"},
		{Start: wib(10, 16, 0), End: wib(10, 17, 0), Source: "deadline:laporan"},
	}

	merged := MergeIntervals(input)

	require.Len(t, merged, 2)
	assert.Equal(t, wib(10, 13, 0), merged[0].Start)
	assert.Equal(t, wib(10, 15, 0), merged[0].End)
	assert.Equal(t, wib(10, 16, 0), merged[1].Start)
	assert.Equal(t, wib(10, 17, 0), merged[1].End)
}

func TestMergeIntervals_TouchingCountsAsOverlapping(t *testing.T) {
	input := []Interval{
		{Start: wib(10, 9, 0), End: wib(10, 10, 0)},
		{Start: wib(10, 10, 0), End: wib(10, 11, 0)},
	}

	merged := MergeIntervals(input)

	require.Len(t, merged, 1)
	assert.Equal(t, wib(10, 9, 0), merged[0].Start)
	assert.Equal(t, wib(10, 11, 0), merged[0].End)
}

func TestMergeIntervals_ContainedIntervalDoesNotShrinkEnd(t *testing.T) {
	input := []Interval{
		{Start: wib(10, 9, 0), End: wib(10, 12, 0)},
		{Start: wib(10, 10, 0), End: wib(10, 11, 0)},
	}

	merged := MergeIntervals(input)

	require.Len(t, merged, 1)
	assert.Equal(t, wib(10, 12, 0), merged[0].End)
}

func TestMergeIntervals_ProvenanceFromFirstContributor(t *testing.T) {
	input := []Interval{
		{Start: wib(10, 13, 30), End: wib(10, 15, 0), Source: "schedule:belajar"},
		{Start: wib(10, 13, 0), End: wib(10, 14, 0), Source: "calendar:rapat"},
	}

	merged := MergeIntervals(input)

	require.Len(t, merged, 1)
	assert.Equal(t, "calendar:rapat", merged[0].Source)
}

func TestMergeIntervals_Idempotent(t *testing.T) {
	input := []Interval{
		{Start: wib(10, 9, 0), End: wib(10, 10, 30)},
		{Start: wib(10, 10, 0), End: wib(10, 11, 0)},
		{Start: wib(11, 19, 0), End: wib(11, 20, 0)},
		{Start: wib(10, 21, 0), End: wib(10, 22, 0)},
	}

	once := MergeIntervals(input)
	twice := MergeIntervals(once)

	assert.Equal(t, once, twice)
}

func TestMergeIntervals_OutputIsDisjointAndSorted(t *testing.T) {
	input := []Interval{
		{Start: wib(12, 18, 0), End: wib(12, 19, 0)},
		{Start: wib(10, 9, 0), End: wib(10, 10, 0)},
		{Start: wib(10, 9, 30), End: wib(10, 11, 0)},
		{Start: wib(11, 13, 0), End: wib(11, 14, 0)},
	}

	merged := MergeIntervals(input)

	for i := 1; i < len(merged); i++ {
		assert.True(t, merged[i].Start.After(merged[i-1].End),
			"interval %d must start strictly after interval %d ends", i, i-1)
	}
}

func TestMergeIntervals_DoesNotModifyInput(t *testing.T) {
	input := []Interval{
		{Start: wib(10, 13, 0), End: wib(10, 14, 0)},
		{Start: wib(10, 9, 0), End: wib(10, 10, 0)},
	}

	MergeIntervals(input)

	assert.Equal(t, wib(10, 13, 0), input[0].Start)
	assert.Equal(t, wib(10, 9, 0), input[1].Start)
}
