package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeQuota(t *testing.T) {
	tests := []struct {
		name      string
		remaining Money
		cpm       int64
		want      int64
	}{
		{"exact", 1000, 1000, 1000},
		{"floors", 4798, 2000, 2399},
		{"less than one impression", 1, 5000, 0},
		{"zero budget", 0, 1000, 0},
		{"overspent", -500, 1000, 0},
		{"free plan", 1000, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeQuota(tt.remaining, tt.cpm))
		})
	}
}

func TestConsumedAmount(t *testing.T) {
	tests := []struct {
		impressions, cpm int64
		want             Money
	}{
		{1000, 2500, 2500},
		{1, 2500, 3},
		{1, 1, 1},
		{0, 2500, 0},
	}
	for _, tt := range tests {
		got, err := ConsumedAmount(tt.impressions, tt.cpm)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	// a quota spent in full never exceeds the remaining budget
	remaining := Money(4798)
	quota := ComputeQuota(remaining, 2000)
	spent, err := ConsumedAmount(quota, 2000)
	require.NoError(t, err)
	assert.LessOrEqual(t, spent, remaining)
}

func TestConsumedAmountOverflow(t *testing.T) {
	_, err := ConsumedAmount(4_000_000_000_000_000, 2500)
	assert.ErrorIs(t, err, ErrMalformedReport)

	_, err = ConsumedAmount(math.MaxInt64, 1)
	assert.ErrorIs(t, err, ErrMalformedReport)

	got, err := ConsumedAmount(1_000_000_000_000, 2500)
	require.NoError(t, err)
	assert.Equal(t, Money(2_500_000_000_000), got)
}

func TestAssignPercentages(t *testing.T) {
	entries := []QuotaEntry{{Desired: 2399}, {Desired: 1000}, {Desired: 0}}
	AssignPercentages(entries)
	assert.Equal(t, 71, entries[0].Percentage)
	assert.Equal(t, 29, entries[1].Percentage)
	assert.Equal(t, 0, entries[2].Percentage)

	empty := []QuotaEntry{{Desired: 0}}
	AssignPercentages(empty)
	assert.Equal(t, 0, empty[0].Percentage)
}
