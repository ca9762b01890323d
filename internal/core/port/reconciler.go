package port

import (
	"context"
	"time"

	"lp-publisher/internal/core/domain"
)

// Reconciler defines the budget reconciliation operations. Runs must not
// overlap for the same date key; callers enforce that.
type Reconciler interface {
	// UpdateCampaignsStatsFromSharedStorage charges yesterday's delivery
	// report to the campaigns it names. Bad or unknown entries are skipped
	// and reported in the returned summary. Shared store failures abort the
	// run.
	UpdateCampaignsStatsFromSharedStorage(ctx context.Context) (*StatsRun, error)

	// PostCampaignsImpressionQuotaToSharedStorage publishes today's
	// impression quota of every active, funded campaign. The publication
	// replaces any previous one for today.
	PostCampaignsImpressionQuotaToSharedStorage(ctx context.Context) (*QuotaRun, error)

	// RenewMonthlyCampaigns moves expired monthly campaigns into a new
	// one month period.
	RenewMonthlyCampaigns(ctx context.Context) (int64, error)
}

// FundingUseCase covers manual funding and balance inspection.
type FundingUseCase interface {
	FundCampaign(ctx context.Context, uniqueID string, amount domain.Money, confirmation string) (*domain.FundingRecord, error)
	Balance(ctx context.Context, uniqueID string) (*Balance, error)
}

// StatsRun summarises one reconciliation of a delivery report.
type StatsRun struct {
	Key        string
	Date       time.Time
	Total      int
	Processed  int
	Duplicates int
	Skipped    int
	Failed     int
	Charged    domain.Money
	Issues     []*domain.ReportError
}

// QuotaRun summarises one quota publication.
type QuotaRun struct {
	Key         string
	Date        time.Time
	Published   int
	Impressions int64
}

// Balance is the budget position of a campaign.
type Balance struct {
	UniqueID  string
	State     domain.State
	Funded    domain.Money
	Consumed  domain.Money
	Remaining domain.Money
}
