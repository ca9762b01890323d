package port

import (
	"context"
	"time"

	"lp-publisher/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaigns and their
// ledgers. It is an outbound port in hexagonal architecture. Writes that
// touch a campaign balance must run in a transaction scoped to that single
// campaign.
type CampaignRepository interface {
	// GetCampaignByUniqueID returns the campaign with its plan, or nil when
	// no campaign has that unique id.
	GetCampaignByUniqueID(ctx context.Context, uniqueID string) (*domain.Campaign, error)
	// ListActiveCampaigns returns campaigns that are approved, enabled,
	// not removed, within their date range on day and still funded.
	ListActiveCampaigns(ctx context.Context, day time.Time) ([]domain.Campaign, error)
	// RecordConsumption appends a consumption record and adds its amount to
	// the campaign's consumed total. It returns false without changing
	// anything when the (campaign, invoice) pair was already recorded.
	RecordConsumption(ctx context.Context, rec *domain.ConsumptionRecord) (bool, error)
	// RecordFunding appends a funding record and adds its amount to the
	// campaign's funded total.
	RecordFunding(ctx context.Context, rec *domain.FundingRecord) error
	// ReplaceQuotas stores entries as the complete quota set of day. A
	// non-nil publish runs before commit; its error rolls the rows back.
	ReplaceQuotas(ctx context.Context, day time.Time, entries []domain.QuotaEntry, publish func(ctx context.Context) error) error
	// RenewMonthlyCampaigns rolls monthly campaigns whose period is over
	// forward one month starting today and returns how many were renewed.
	RenewMonthlyCampaigns(ctx context.Context, today time.Time) (int64, error)
}
