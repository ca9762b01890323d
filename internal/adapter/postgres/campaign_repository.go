package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lp-publisher/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
            c.id,
            c.unique_id,
            COALESCE(c.organization_id, 0),
            c.name,
            c.approved,
            c.enabled,
            c.draft,
            c.removed,
            c.start_date,
            c.end_date,
            c.funded_amount,
            c.consumed_amount,
            c.created_at,
            c.updated_at,
            p.id,
            p.name,
            p.cpm,
            p.cadence`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.UniqueID,
		&c.OrganizationID,
		&c.Name,
		&c.Approved,
		&c.Enabled,
		&c.Draft,
		&c.Removed,
		&c.StartDate,
		&c.EndDate,
		&c.FundedAmount,
		&c.ConsumedAmount,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.Plan.ID,
		&c.Plan.Name,
		&c.Plan.CPM,
		&c.Plan.Cadence,
	)
	return c, err
}

// GetCampaignByUniqueID returns a campaign with its plan, or nil when it
// does not exist.
func (r *CampaignRepository) GetCampaignByUniqueID(ctx context.Context, uniqueID string) (*domain.Campaign, error) {
	query := `SELECT` + campaignColumns + `
        FROM campaigns c
        JOIN plans p ON p.id = c.plan_id
        WHERE c.unique_id = $1`
	c, err := scanCampaign(r.pool.QueryRow(ctx, query, uniqueID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign %q: %w", uniqueID, err)
	}
	return &c, nil
}

// ListActiveCampaigns returns funded campaigns that may deliver on day.
func (r *CampaignRepository) ListActiveCampaigns(ctx context.Context, day time.Time) ([]domain.Campaign, error) {
	query := `SELECT` + campaignColumns + `
        FROM campaigns c
        JOIN plans p ON p.id = c.plan_id
        WHERE c.approved AND c.enabled AND NOT c.draft AND NOT c.removed
          AND c.start_date < $2
          AND (c.end_date IS NULL OR c.end_date >= $1)
          AND c.funded_amount > c.consumed_amount
        ORDER BY c.id`
	start := domain.DayOf(day)
	rows, err := r.pool.Query(ctx, query, start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan active campaigns: %w", err)
	}
	return campaigns, nil
}

// RecordConsumption inserts the consumption record and charges the
// campaign inside one transaction that locks only that campaign row. A
// repeated (campaign, invoice) pair is left untouched and reported as not
// applied.
func (r *CampaignRepository) RecordConsumption(ctx context.Context, rec *domain.ConsumptionRecord) (applied bool, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// lock campaign
	var id int64
	err = tx.QueryRow(ctx, `SELECT id FROM campaigns WHERE id = $1 FOR UPDATE`, rec.CampaignID).Scan(&id)
	if err != nil {
		return false, fmt.Errorf("lock campaign %d: %w", rec.CampaignID, err)
	}

	err = tx.QueryRow(ctx, `INSERT INTO campaign_consumption_history
    (campaign_id, invoice_id, consumption_date, number_of_impression, consumed_amount)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (campaign_id, invoice_id) DO NOTHING
RETURNING id`,
		rec.CampaignID, rec.InvoiceID, rec.ConsumptionDate, rec.Impressions, rec.Amount).Scan(&rec.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert consumption: %w", err)
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns SET consumed_amount = consumed_amount + $1, updated_at = now() WHERE id = $2`,
		rec.Amount, rec.CampaignID)
	if err != nil {
		return false, fmt.Errorf("charge campaign: %w", err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO impressions (campaign_id, date, desired, actual)
VALUES ($1,$2,0,$3)
ON CONFLICT (campaign_id, date) DO UPDATE SET actual = impressions.actual + EXCLUDED.actual`,
		rec.CampaignID, rec.ConsumptionDate, rec.Impressions)
	if err != nil {
		return false, fmt.Errorf("record delivered impressions: %w", err)
	}
	return true, nil
}

// RecordFunding inserts a funding record and credits the campaign.
func (r *CampaignRepository) RecordFunding(ctx context.Context, rec *domain.FundingRecord) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `INSERT INTO campaign_funding_history (campaign_id, amount, payment_date, payment_confirmation)
VALUES ($1,$2,$3,$4) RETURNING id`,
		rec.CampaignID, rec.Amount, rec.PaymentDate, rec.Confirmation).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("insert funding: %w", err)
	}

	tag, err := tx.Exec(ctx, `UPDATE campaigns SET funded_amount = funded_amount + $1, updated_at = now() WHERE id = $2`,
		rec.Amount, rec.CampaignID)
	if err != nil {
		return fmt.Errorf("credit campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceQuotas makes entries the full quota set of day. Desired counts of
// campaigns missing from entries are reset; delivered counts are kept.
// publish runs last inside the transaction, so the rows commit only when
// it succeeds.
func (r *CampaignRepository) ReplaceQuotas(ctx context.Context, day time.Time, entries []domain.QuotaEntry, publish func(ctx context.Context) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	date := domain.DayOf(day)
	if _, err = tx.Exec(ctx, `UPDATE impressions SET desired = 0, percentage = 0 WHERE date = $1`, date); err != nil {
		return fmt.Errorf("reset quotas: %w", err)
	}
	if len(entries) > 0 {
		batch := &pgx.Batch{}
		for _, e := range entries {
			batch.Queue(`INSERT INTO impressions (campaign_id, date, desired, percentage)
VALUES ($1,$2,$3,$4)
ON CONFLICT (campaign_id, date) DO UPDATE SET desired = EXCLUDED.desired, percentage = EXCLUDED.percentage`,
				e.CampaignID, date, e.Desired, e.Percentage)
		}
		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("store quotas: %w", err)
		}
	}

	if publish != nil {
		if err = publish(ctx); err != nil {
			return err
		}
	}
	return nil
}

// RenewMonthlyCampaigns starts a new one month period today for monthly
// campaigns that are still running but whose period has ended, or that
// never had an end date and started before today.
func (r *CampaignRepository) RenewMonthlyCampaigns(ctx context.Context, today time.Time) (int64, error) {
	start := domain.DayOf(today)
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns c
SET start_date = $1, end_date = $2, updated_at = now()
FROM plans p
WHERE c.plan_id = p.id
  AND p.cadence = 'monthly'
  AND c.approved AND c.enabled AND NOT c.draft AND NOT c.removed
  AND ((c.end_date IS NOT NULL AND c.end_date < $1) OR (c.end_date IS NULL AND c.start_date < $1))`,
		start, start.AddDate(0, 1, 0))
	if err != nil {
		return 0, fmt.Errorf("renew monthly campaigns: %w", err)
	}
	return tag.RowsAffected(), nil
}
