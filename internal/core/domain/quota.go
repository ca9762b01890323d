package domain

import (
	"math"
	"time"
)

// QuotaEntry is the impression allowance of a campaign for one day along
// with what was actually delivered.
type QuotaEntry struct {
	CampaignID int64
	UniqueID   string
	Date       time.Time
	Desired    int64
	Delivered  int64
	Percentage int // share of the day's total desired impressions
}

// QuotaOrder is the document published to the shared store, keyed by
// campaign unique id.
type QuotaOrder map[string]QuotaOrderItem

type QuotaOrderItem struct {
	NoOfImpressions int64 `json:"no_of_impressions"`
}

// ComputeQuota returns how many impressions the remaining budget buys at
// the given CPM. The result is floored and never negative.
func ComputeQuota(remaining Money, cpm int64) int64 {
	if remaining <= 0 || cpm <= 0 {
		return 0
	}
	return int64(remaining) * 1000 / cpm
}

// AssignPercentages fills the Percentage of every entry with its rounded
// share of the summed Desired impressions.
func AssignPercentages(entries []QuotaEntry) {
	var sum int64
	for _, e := range entries {
		sum += e.Desired
	}
	for i := range entries {
		if sum <= 0 {
			entries[i].Percentage = 0
			continue
		}
		entries[i].Percentage = int(math.Round(100 * float64(entries[i].Desired) / float64(sum)))
	}
}
