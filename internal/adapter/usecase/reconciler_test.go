package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lp-publisher/internal/core/domain"
	"lp-publisher/internal/core/port"
	"lp-publisher/internal/core/port/mocks"
)

var fixedNow = time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestReconciler(repo port.CampaignRepository, store port.SharedStore) *ReconcilerUseCase {
	u := NewReconcilerUseCase(repo, store, ReconcilerConfig{
		StatusKeyPrefix: "campaign-status",
		OrderKeyPrefix:  "campaign-order",
	}, discardLogger())
	u.now = func() time.Time { return fixedNow }
	return u
}

func campaignFixture(id int64, uniqueID string, funded, consumed domain.Money, cpm int64) *domain.Campaign {
	return &domain.Campaign{
		ID:             id,
		UniqueID:       uniqueID,
		Name:           uniqueID,
		Plan:           domain.Plan{ID: 1, Name: "standard", CPM: cpm, Cadence: domain.BillingOneTime},
		Approved:       true,
		Enabled:        true,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		FundedAmount:   funded,
		ConsumedAmount: consumed,
	}
}

// reportDoc makes the store mock decode doc into the destination.
func reportDoc(doc string) func(context.Context, string, any) error {
	return func(_ context.Context, _ string, dst any) error {
		return json.Unmarshal([]byte(doc), dst)
	}
}

// publishInTx stands in for a repository transaction that commits once
// publish succeeds.
func publishInTx(ctx context.Context, _ time.Time, _ []domain.QuotaEntry, publish func(context.Context) error) error {
	return publish(ctx)
}

func invoice(id string) any {
	return mock.MatchedBy(func(r *domain.ConsumptionRecord) bool { return r.InvoiceID == id })
}

// TestStatsReconciliation runs a mixed report through the reconciler.
func TestStatsReconciliation(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)

	doc := `[
		{"campaign_id":"great","invoice_id":"inv-1","date":"2024-03-09","impression_count":1000},
		{"campaign_id":"ghost","invoice_id":"inv-2","date":"2024-03-09","impression_count":10},
		{"campaign_id":"great","invoice_id":"","date":"2024-03-09","impression_count":5},
		"oops",
		{"campaign_id":"awesome","invoice_id":"inv-3","date":"2024-03-09","impression_count":7},
		{"campaign_id":"gone","invoice_id":"inv-4","date":"2024-03-09","impression_count":7},
		{"campaign_id":"great","invoice_id":"inv-5","date":"2024-03-09","impression_count":1}
	]`
	store.EXPECT().
		Read(mock.Anything, "campaign-status-2024-03-09", mock.Anything).
		RunAndReturn(reportDoc(doc))

	great := campaignFixture(1, "great", 10000, 0, 2500)
	awesome := campaignFixture(2, "awesome", 10000, 0, 2500)
	gone := campaignFixture(3, "gone", 10000, 0, 2500)
	gone.Removed = true

	repo.EXPECT().GetCampaignByUniqueID(mock.Anything, "great").Return(great, nil)
	repo.EXPECT().GetCampaignByUniqueID(mock.Anything, "ghost").Return(nil, nil)
	repo.EXPECT().GetCampaignByUniqueID(mock.Anything, "awesome").Return(awesome, nil)
	repo.EXPECT().GetCampaignByUniqueID(mock.Anything, "gone").Return(gone, nil)

	repo.EXPECT().
		RecordConsumption(mock.Anything, invoice("inv-1")).
		Run(func(_ context.Context, rec *domain.ConsumptionRecord) {
			assert.Equal(t, int64(1), rec.CampaignID)
			assert.Equal(t, int64(1000), rec.Impressions)
			assert.Equal(t, domain.Money(2500), rec.Amount)
			assert.Equal(t, "2024-03-09", rec.ConsumptionDate.Format(domain.DateLayout))
		}).
		Return(true, nil)
	repo.EXPECT().RecordConsumption(mock.Anything, invoice("inv-3")).Return(false, nil)
	repo.EXPECT().RecordConsumption(mock.Anything, invoice("inv-5")).Return(true, nil)

	run, err := newTestReconciler(repo, store).UpdateCampaignsStatsFromSharedStorage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "campaign-status-2024-03-09", run.Key)
	assert.Equal(t, 7, run.Total)
	assert.Equal(t, 2, run.Processed)
	assert.Equal(t, 1, run.Duplicates)
	assert.Equal(t, 4, run.Skipped)
	assert.Equal(t, 0, run.Failed)
	// 2500 for inv-1, one impression at 2500 CPM rounds up to 3
	assert.Equal(t, domain.Money(2503), run.Charged)

	require.Len(t, run.Issues, 4)
	assert.ErrorIs(t, run.Issues[0], domain.ErrNotFound)
	assert.Equal(t, "ghost", run.Issues[0].CampaignID)
	assert.ErrorIs(t, run.Issues[1], domain.ErrMalformedReport)
	assert.ErrorIs(t, run.Issues[2], domain.ErrMalformedReport)
	assert.Equal(t, 3, run.Issues[2].Index)
	assert.ErrorIs(t, run.Issues[3], domain.ErrNotFound)
	assert.Equal(t, "gone", run.Issues[3].CampaignID)
}

// TestStatsReplayIsIdempotent replays one report against a ledger that
// rejects repeated invoices and checks the budget is charged once.
func TestStatsReplayIsIdempotent(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)

	doc := `[
		{"campaign_id":"great","invoice_id":"a","date":"2024-03-09","impression_count":1200},
		{"campaign_id":"great","invoice_id":"b","date":"2024-03-09","impression_count":800}
	]`
	store.EXPECT().Read(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(reportDoc(doc))

	great := campaignFixture(1, "great", 10004, 0, 2000)
	repo.EXPECT().GetCampaignByUniqueID(mock.Anything, "great").Return(great, nil)

	seen := map[string]bool{}
	repo.EXPECT().
		RecordConsumption(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, rec *domain.ConsumptionRecord) (bool, error) {
			if seen[rec.InvoiceID] {
				return false, nil
			}
			seen[rec.InvoiceID] = true
			great.ConsumedAmount += rec.Amount
			return true, nil
		})

	u := newTestReconciler(repo, store)

	first, err := u.UpdateCampaignsStatsFromSharedStorage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, first.Processed)
	assert.Equal(t, domain.Money(4000), first.Charged)
	remaining := great.RemainingBudget()

	second, err := u.UpdateCampaignsStatsFromSharedStorage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Processed)
	assert.Equal(t, 2, second.Duplicates)
	assert.Equal(t, domain.Money(0), second.Charged)
	assert.Equal(t, remaining, great.RemainingBudget())
	assert.Equal(t, domain.Money(6004), great.RemainingBudget())
}

// TestStatsMissingReportIsRetried checks that a report the partner has not
// uploaded yet fails the run instead of completing it empty.
func TestStatsMissingReportIsRetried(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)

	store.EXPECT().
		Read(mock.Anything, "campaign-status-2024-03-09", mock.Anything).
		Return(fmt.Errorf("read campaign-status-2024-03-09: %w", port.ErrObjectNotFound))

	run, err := newTestReconciler(repo, store).UpdateCampaignsStatsFromSharedStorage(context.Background())
	require.ErrorIs(t, err, domain.ErrReportNotAvailable)
	assert.Nil(t, run)
}

func TestStatsEmptyReport(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)

	store.EXPECT().Read(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(reportDoc(`[]`))

	run, err := newTestReconciler(repo, store).UpdateCampaignsStatsFromSharedStorage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, run.Total)
	assert.Empty(t, run.Issues)
}

// TestStatsSkipsOversizedCounts checks that impression counts whose price
// does not fit the ledger are skipped as malformed and never charged.
func TestStatsSkipsOversizedCounts(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)

	doc := `[
		{"campaign_id":"great","invoice_id":"huge","date":"2024-03-09","impression_count":4000000000000000},
		{"campaign_id":"pricey","invoice_id":"wide","date":"2024-03-09","impression_count":900000000000}
	]`
	store.EXPECT().Read(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(reportDoc(doc))
	repo.EXPECT().GetCampaignByUniqueID(mock.Anything, "pricey").
		Return(campaignFixture(2, "pricey", 100, 0, 20_000_000_000), nil)

	run, err := newTestReconciler(repo, store).UpdateCampaignsStatsFromSharedStorage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, run.Skipped)
	assert.Equal(t, domain.Money(0), run.Charged)
	require.Len(t, run.Issues, 2)
	assert.ErrorIs(t, run.Issues[0], domain.ErrMalformedReport)
	assert.ErrorIs(t, run.Issues[1], domain.ErrMalformedReport)
	repo.AssertNotCalled(t, "RecordConsumption", mock.Anything, mock.Anything)
}

func TestStatsStorageUnavailableFailsRun(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)

	store.EXPECT().
		Read(mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: connection refused", domain.ErrStorageUnavailable))

	run, err := newTestReconciler(repo, store).UpdateCampaignsStatsFromSharedStorage(context.Background())
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Nil(t, run)
}

func TestStatsUndecodableReportFailsRun(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)

	store.EXPECT().
		Read(mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: invalid character", domain.ErrMalformedReport))

	_, err := newTestReconciler(repo, store).UpdateCampaignsStatsFromSharedStorage(context.Background())
	require.ErrorIs(t, err, domain.ErrMalformedReport)
}

// TestStatsRepositoryFailureContinues checks that one failing entry does
// not stop the batch but still fails the run for a retry.
func TestStatsRepositoryFailureContinues(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)

	doc := `[
		{"campaign_id":"great","invoice_id":"a","date":"2024-03-09","impression_count":10},
		{"campaign_id":"great","invoice_id":"b","date":"2024-03-09","impression_count":10}
	]`
	store.EXPECT().Read(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(reportDoc(doc))
	repo.EXPECT().GetCampaignByUniqueID(mock.Anything, "great").Return(campaignFixture(1, "great", 100, 0, 1000), nil)
	repo.EXPECT().RecordConsumption(mock.Anything, invoice("a")).Return(false, errors.New("connection reset"))
	repo.EXPECT().RecordConsumption(mock.Anything, invoice("b")).Return(true, nil)

	run, err := newTestReconciler(repo, store).UpdateCampaignsStatsFromSharedStorage(context.Background())
	require.Error(t, err)
	require.NotNil(t, run)
	assert.Equal(t, 1, run.Failed)
	assert.Equal(t, 1, run.Processed)
	assert.Equal(t, domain.Money(10), run.Charged)
}

func TestStatsUsesConfiguredCalendar(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)

	u := NewReconcilerUseCase(repo, store, ReconcilerConfig{
		StatusKeyPrefix: "status",
		OrderKeyPrefix:  "order",
		Location:        time.FixedZone("UTC-5", -5*3600),
	}, discardLogger())
	// still the 9th in UTC-5
	u.now = func() time.Time { return time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC) }

	store.EXPECT().Read(mock.Anything, "status-2024-03-08", mock.Anything).RunAndReturn(reportDoc(`[]`))

	run, err := u.UpdateCampaignsStatsFromSharedStorage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "status-2024-03-08", run.Key)
}

func TestQuotaPublication(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	great := campaignFixture(1, "great", 10004, 5206, 2000)
	awesome := campaignFixture(2, "awesome", 1000, 0, 1000)
	spent := campaignFixture(3, "spent", 5000, 5000, 1000)
	paused := campaignFixture(4, "paused", 5000, 0, 1000)
	paused.Enabled = false
	later := campaignFixture(5, "later", 5000, 0, 1000)
	later.StartDate = today.AddDate(0, 0, 3)
	dust := campaignFixture(6, "dust", 1, 0, 5000)

	repo.EXPECT().
		ListActiveCampaigns(mock.Anything, today).
		Return([]domain.Campaign{*great, *awesome, *spent, *paused, *later, *dust}, nil)

	repo.EXPECT().
		ReplaceQuotas(mock.Anything, today, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ time.Time, entries []domain.QuotaEntry, publish func(context.Context) error) error {
			require.Len(t, entries, 2)
			assert.Equal(t, int64(1), entries[0].CampaignID)
			assert.Equal(t, int64(2399), entries[0].Desired)
			assert.Equal(t, 71, entries[0].Percentage)
			assert.Equal(t, int64(2), entries[1].CampaignID)
			assert.Equal(t, int64(1000), entries[1].Desired)
			assert.Equal(t, 29, entries[1].Percentage)
			return publish(ctx)
		})

	store.EXPECT().
		Write(mock.Anything, "campaign-order-2024-03-10", domain.QuotaOrder{
			"great":   {NoOfImpressions: 2399},
			"awesome": {NoOfImpressions: 1000},
		}).
		Return(nil)

	run, err := newTestReconciler(repo, store).PostCampaignsImpressionQuotaToSharedStorage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, run.Published)
	assert.Equal(t, int64(3399), run.Impressions)
	assert.Equal(t, "campaign-order-2024-03-10", run.Key)
}

func TestQuotaPublicationWithNothingActive(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)

	repo.EXPECT().ListActiveCampaigns(mock.Anything, mock.Anything).Return(nil, nil)
	repo.EXPECT().
		ReplaceQuotas(mock.Anything, mock.Anything, []domain.QuotaEntry{}, mock.Anything).
		RunAndReturn(publishInTx)
	store.EXPECT().Write(mock.Anything, "campaign-order-2024-03-10", domain.QuotaOrder{}).Return(nil)

	run, err := newTestReconciler(repo, store).PostCampaignsImpressionQuotaToSharedStorage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, run.Published)
}

// TestQuotaStoreFailureFailsRun checks that the store write runs inside the
// quota transaction and its failure is returned from it.
func TestQuotaStoreFailureFailsRun(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)

	repo.EXPECT().
		ListActiveCampaigns(mock.Anything, mock.Anything).
		Return([]domain.Campaign{*campaignFixture(1, "great", 1000, 0, 1000)}, nil)

	var txErr error
	repo.EXPECT().
		ReplaceQuotas(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ time.Time, _ []domain.QuotaEntry, publish func(context.Context) error) error {
			txErr = publish(ctx)
			return txErr
		})
	store.EXPECT().
		Write(mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: timeout", domain.ErrStorageUnavailable))

	run, err := newTestReconciler(repo, store).PostCampaignsImpressionQuotaToSharedStorage(context.Background())
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.ErrorIs(t, txErr, domain.ErrStorageUnavailable, "write error must reach the transaction")
	assert.Nil(t, run)
}

func TestQuotaRepositoryFailureSkipsPublication(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)

	repo.EXPECT().
		ListActiveCampaigns(mock.Anything, mock.Anything).
		Return([]domain.Campaign{*campaignFixture(1, "great", 1000, 0, 1000)}, nil)
	repo.EXPECT().
		ReplaceQuotas(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("deadlock detected"))

	_, err := newTestReconciler(repo, store).PostCampaignsImpressionQuotaToSharedStorage(context.Background())
	require.Error(t, err)
	store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
}

func TestRenewMonthlyCampaigns(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	store := mocks.NewMockSharedStore(t)

	repo.EXPECT().
		RenewMonthlyCampaigns(mock.Anything, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)).
		Return(3, nil)

	n, err := newTestReconciler(repo, store).RenewMonthlyCampaigns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestStoreKey(t *testing.T) {
	day := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "campaign-order-2023-12-01", StoreKey("campaign-order", day))
}
