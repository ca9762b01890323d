package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCampaignStateOn(t *testing.T) {
	end := date(2024, 3, 31)
	base := Campaign{
		Approved:  true,
		Enabled:   true,
		StartDate: date(2024, 3, 1),
		EndDate:   &end,
	}

	tests := []struct {
		name   string
		mutate func(c *Campaign)
		day    time.Time
		want   State
	}{
		{"active in range", nil, date(2024, 3, 15), StateActive},
		{"active on start day", nil, date(2024, 3, 1), StateActive},
		{"active on end day", nil, date(2024, 3, 31), StateActive},
		{"pending before start", nil, date(2024, 2, 28), StatePending},
		{"expired after end", nil, date(2024, 4, 1), StateExpired},
		{"pending when not approved", func(c *Campaign) { c.Approved = false }, date(2024, 3, 15), StatePending},
		{"paused when disabled", func(c *Campaign) { c.Enabled = false }, date(2024, 3, 15), StatePaused},
		{"draft wins over range", func(c *Campaign) { c.Draft = true }, date(2024, 4, 5), StateDraft},
		{"removed wins over all", func(c *Campaign) { c.Removed = true; c.Draft = true }, date(2024, 3, 15), StateRemoved},
		{"open ended", func(c *Campaign) { c.EndDate = nil }, date(2030, 1, 1), StateActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			if tt.mutate != nil {
				tt.mutate(&c)
			}
			assert.Equal(t, tt.want, c.StateOn(tt.day.Add(13*time.Hour)))
		})
	}
}

func TestCampaignEligibility(t *testing.T) {
	c := Campaign{Approved: true, Enabled: true, StartDate: date(2024, 1, 1), FundedAmount: 10004, ConsumedAmount: 5206}
	day := date(2024, 3, 10)

	assert.Equal(t, Money(4798), c.RemainingBudget())
	assert.True(t, c.EligibleForQuota(day))
	assert.True(t, c.AcceptsReports())

	c.ConsumedAmount = c.FundedAmount
	assert.False(t, c.EligibleForQuota(day))

	c.ConsumedAmount = c.FundedAmount + 1
	assert.Equal(t, Money(-1), c.RemainingBudget())
	assert.False(t, c.EligibleForQuota(day))

	c.Enabled = false
	c.ConsumedAmount = 0
	assert.False(t, c.EligibleForQuota(day))
	assert.True(t, c.AcceptsReports())

	c.Removed = true
	assert.False(t, c.AcceptsReports())
}

func TestDayOf(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	got := DayOf(time.Date(2024, 3, 10, 23, 59, 59, 5, loc))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), got)
}
