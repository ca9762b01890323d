package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"lp-publisher/internal/core/domain"
	"lp-publisher/internal/core/port"
)

// ReconcilerConfig holds the shared store key prefixes and the location
// whose calendar decides "today" and "yesterday".
type ReconcilerConfig struct {
	StatusKeyPrefix string
	OrderKeyPrefix  string
	Location        *time.Location
}

// ReconcilerUseCase keeps campaign spend in line with the delivery the
// partner reports and publishes the impression quota it may deliver next.
// It implements port.Reconciler.
type ReconcilerUseCase struct {
	repo     port.CampaignRepository
	store    port.SharedStore
	cfg      ReconcilerConfig
	logger   *slog.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewReconcilerUseCase creates the reconciler. A nil location means UTC.
func NewReconcilerUseCase(repo port.CampaignRepository, store port.SharedStore, cfg ReconcilerConfig, logger *slog.Logger) *ReconcilerUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &ReconcilerUseCase{
		repo:     repo,
		store:    store,
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
	}
}

// StoreKey builds the shared store key "<prefix>-<YYYY-MM-DD>".
func StoreKey(prefix string, day time.Time) string {
	return prefix + "-" + day.Format(domain.DateLayout)
}

func (u *ReconcilerUseCase) today() time.Time {
	return domain.DayOf(u.now().In(u.cfg.Location))
}

// UpdateCampaignsStatsFromSharedStorage charges yesterday's delivery report.
// Entries are isolated from each other: malformed entries and entries for
// unknown or removed campaigns are skipped, and a repository failure on one
// entry does not stop the others. The returned error is non-nil when the
// report could not be read at all, or when some entries failed and the run
// should be retried. A report that is not uploaded yet yields
// domain.ErrReportNotAvailable. Replaying a report never charges an
// invoice twice.
func (u *ReconcilerUseCase) UpdateCampaignsStatsFromSharedStorage(ctx context.Context) (*port.StatsRun, error) {
	day := u.today().AddDate(0, 0, -1)
	run := &port.StatsRun{
		Key:  StoreKey(u.cfg.StatusKeyPrefix, day),
		Date: day,
	}
	logger := u.logger.With(slog.String("key", run.Key))

	var entries []json.RawMessage
	err := u.store.Read(ctx, run.Key, &entries)
	switch {
	case errors.Is(err, port.ErrObjectNotFound):
		logger.Warn("no delivery report found")
		return nil, fmt.Errorf("%w: %s", domain.ErrReportNotAvailable, run.Key)
	case err != nil:
		return nil, fmt.Errorf("read delivery report %s: %w", run.Key, err)
	}

	run.Total = len(entries)
	for i, raw := range entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return run, ctxErr
		}
		rep, amount, err := u.chargeReport(ctx, raw)
		if err == nil {
			run.Charged += amount
			continue
		}
		if errors.Is(err, errDuplicate) {
			run.Duplicates++
			logger.Info("delivery report already charged",
				slog.String("campaign", rep.CampaignID), slog.String("invoice", rep.InvoiceID))
			continue
		}

		issue := &domain.ReportError{Index: i, CampaignID: rep.CampaignID, InvoiceID: rep.InvoiceID, Err: err}
		run.Issues = append(run.Issues, issue)
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrMalformedReport) {
			run.Skipped++
			logger.Warn("skipping delivery report", slog.Any("error", issue))
		} else {
			run.Failed++
			logger.Error("failed to charge delivery report", slog.Any("error", issue))
		}
	}

	run.Processed = run.Total - run.Duplicates - run.Skipped - run.Failed

	logger.Info("delivery report reconciled",
		slog.Int("total", run.Total),
		slog.Int("processed", run.Processed),
		slog.Int("duplicates", run.Duplicates),
		slog.Int("skipped", run.Skipped),
		slog.Int("failed", run.Failed),
		slog.String("charged", run.Charged.String()))

	if run.Failed > 0 {
		return run, fmt.Errorf("%d of %d delivery reports failed", run.Failed, run.Total)
	}
	return run, nil
}

var errDuplicate = errors.New("invoice already charged")

// chargeReport decodes, validates and applies one report entry and returns
// the amount charged. The decoded report is returned even on error so
// callers can log its ids.
func (u *ReconcilerUseCase) chargeReport(ctx context.Context, raw json.RawMessage) (domain.DeliveryReport, domain.Money, error) {
	var rep domain.DeliveryReport
	if err := json.Unmarshal(raw, &rep); err != nil {
		return rep, 0, fmt.Errorf("%w: %v", domain.ErrMalformedReport, err)
	}
	if err := u.validate.Struct(rep); err != nil {
		return rep, 0, fmt.Errorf("%w: %v", domain.ErrMalformedReport, err)
	}
	date, err := time.ParseInLocation(domain.DateLayout, rep.Date, u.cfg.Location)
	if err != nil {
		return rep, 0, fmt.Errorf("%w: %v", domain.ErrMalformedReport, err)
	}

	camp, err := u.repo.GetCampaignByUniqueID(ctx, rep.CampaignID)
	if err != nil {
		return rep, 0, err
	}
	if camp == nil || !camp.AcceptsReports() {
		return rep, 0, domain.ErrNotFound
	}

	amount, err := domain.ConsumedAmount(rep.ImpressionCount, camp.Plan.CPM)
	if err != nil {
		return rep, 0, err
	}
	rec := &domain.ConsumptionRecord{
		CampaignID:      camp.ID,
		InvoiceID:       rep.InvoiceID,
		ConsumptionDate: date,
		Impressions:     rep.ImpressionCount,
		Amount:          amount,
	}
	applied, err := u.repo.RecordConsumption(ctx, rec)
	if err != nil {
		return rep, 0, err
	}
	if !applied {
		return rep, 0, errDuplicate
	}
	return rep, rec.Amount, nil
}

// PostCampaignsImpressionQuotaToSharedStorage publishes today's quota. The
// shared document is written inside the transaction that replaces the
// day's quota rows, so a failed write leaves the stored quota untouched.
// Campaigns whose quota would be zero are left out of the document.
func (u *ReconcilerUseCase) PostCampaignsImpressionQuotaToSharedStorage(ctx context.Context) (*port.QuotaRun, error) {
	day := u.today()
	run := &port.QuotaRun{
		Key:  StoreKey(u.cfg.OrderKeyPrefix, day),
		Date: day,
	}

	campaigns, err := u.repo.ListActiveCampaigns(ctx, day)
	if err != nil {
		return nil, err
	}

	order := make(domain.QuotaOrder, len(campaigns))
	entries := make([]domain.QuotaEntry, 0, len(campaigns))
	for i := range campaigns {
		c := &campaigns[i]
		if !c.EligibleForQuota(day) {
			continue
		}
		quota := domain.ComputeQuota(c.RemainingBudget(), c.Plan.CPM)
		if quota <= 0 {
			continue
		}
		order[c.UniqueID] = domain.QuotaOrderItem{NoOfImpressions: quota}
		entries = append(entries, domain.QuotaEntry{
			CampaignID: c.ID,
			UniqueID:   c.UniqueID,
			Date:       day,
			Desired:    quota,
		})
		run.Impressions += quota
	}
	domain.AssignPercentages(entries)

	publish := func(ctx context.Context) error {
		if err := u.store.Write(ctx, run.Key, order); err != nil {
			return fmt.Errorf("publish quota %s: %w", run.Key, err)
		}
		return nil
	}
	if err = u.repo.ReplaceQuotas(ctx, day, entries, publish); err != nil {
		return nil, fmt.Errorf("replace quotas: %w", err)
	}
	run.Published = len(order)

	u.logger.Info("impression quota published",
		slog.String("key", run.Key),
		slog.Int("campaigns", run.Published),
		slog.Int64("impressions", run.Impressions))
	return run, nil
}

// RenewMonthlyCampaigns starts a new period for monthly campaigns that
// ran out today.
func (u *ReconcilerUseCase) RenewMonthlyCampaigns(ctx context.Context) (int64, error) {
	n, err := u.repo.RenewMonthlyCampaigns(ctx, u.today())
	if err != nil {
		return 0, err
	}
	u.logger.Info("monthly campaigns renewed", slog.Int64("count", n))
	return n, nil
}
