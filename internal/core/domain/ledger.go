package domain

import (
	"fmt"
	"math"
	"time"
)

// FundingRecord is an append-only entry for a payment added to a campaign.
type FundingRecord struct {
	ID           int64
	CampaignID   int64
	Amount       Money
	PaymentDate  time.Time
	Confirmation string // reference received from the payment system
}

// ConsumptionRecord is an append-only entry for one day of delivery billed
// by the partner. A (CampaignID, InvoiceID) pair is charged at most once.
type ConsumptionRecord struct {
	ID              int64
	CampaignID      int64
	InvoiceID       string
	ConsumptionDate time.Time
	Impressions     int64
	Amount          Money
}

// ConsumedAmount prices delivered impressions with the plan CPM. Partial
// minor units are rounded up. A product that does not fit in Money is
// reported as ErrMalformedReport.
func ConsumedAmount(impressions, cpm int64) (Money, error) {
	if impressions <= 0 || cpm <= 0 {
		return 0, nil
	}
	if impressions > (math.MaxInt64-999)/cpm {
		return 0, fmt.Errorf("%w: %d impressions at CPM %d overflow", ErrMalformedReport, impressions, cpm)
	}
	return Money((impressions*cpm + 999) / 1000), nil
}
